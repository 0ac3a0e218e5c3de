package dto

import (
	"time"

	"filmhub/internal/http-api/models"
)

// CreateMovieInput carries the validated multipart fields of a movie create.
// The image, when present, has already been stored; only its path travels here.
type CreateMovieInput struct {
	Title       string
	Director    string
	Description string
	Genre       string
	ReleaseDate time.Time
	ImagePath   *string
}

// UpdateMovieRequest: payload for a full or partial movie update
type UpdateMovieRequest struct {
	Title       *string `json:"title"`
	Director    *string `json:"director"`
	Description *string `json:"description"`
	Genre       *string `json:"genre"`
	ReleaseDate *string `json:"releaseDate" binding:"omitempty,datetime=2006-01-02"`
}

// MovieResponse is a movie annotated with the aggregate rating and, when the
// caller is authenticated, their own rating. Both are nil when absent.
type MovieResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Director      string    `json:"director"`
	Description   string    `json:"description"`
	Genre         string    `json:"genre"`
	ReleaseDate   time.Time `json:"releaseDate"`
	ImagePath     *string   `json:"imagePath"`
	UserID        int64     `json:"userId"`
	CreatedAt     time.Time `json:"createdAt"`
	AverageRating *float64  `json:"averageRating"`
	UserRating    *float64  `json:"userRating"`
}

// RatingEntry is one rating row as exposed on the movie detail view.
type RatingEntry struct {
	ID     int64   `json:"id"`
	Value  float64 `json:"value"`
	UserID int64   `json:"userId"`
}

// MovieOwner is the owner annotation on the movie detail view.
type MovieOwner struct {
	UserName string `json:"userName"`
}

// MovieDetailResponse is the single-movie view: the movie plus its comment
// thread, its rating rows and the computed aggregates.
type MovieDetailResponse struct {
	MovieResponse
	User     *MovieOwner       `json:"user,omitempty"`
	Comments []CommentResponse `json:"comments"`
	Ratings  []RatingEntry     `json:"ratings"`
}

// FromModelToMovieResponse annotates a movie with the given aggregates.
func FromModelToMovieResponse(m *models.Movie, averageRating, userRating *float64) MovieResponse {
	return MovieResponse{
		ID:            m.ID,
		Title:         m.Title,
		Director:      m.Director,
		Description:   m.Description,
		Genre:         m.Genre,
		ReleaseDate:   m.ReleaseDate,
		ImagePath:     m.ImagePath,
		UserID:        m.UserID,
		CreatedAt:     m.CreatedAt,
		AverageRating: averageRating,
		UserRating:    userRating,
	}
}

// FromModelToMovieDetail builds the detail view from a fully preloaded movie.
func FromModelToMovieDetail(m *models.Movie, averageRating, userRating *float64) MovieDetailResponse {
	detail := MovieDetailResponse{
		MovieResponse: FromModelToMovieResponse(m, averageRating, userRating),
		Comments:      make([]CommentResponse, 0, len(m.Comments)),
		Ratings:       make([]RatingEntry, 0, len(m.Ratings)),
	}
	if m.User != nil {
		detail.User = &MovieOwner{UserName: m.User.UserName}
	}
	for i := range m.Comments {
		detail.Comments = append(detail.Comments, FromModelToCommentResponse(&m.Comments[i]))
	}
	for _, r := range m.Ratings {
		detail.Ratings = append(detail.Ratings, RatingEntry{ID: r.ID, Value: r.Value, UserID: r.UserID})
	}
	return detail
}
