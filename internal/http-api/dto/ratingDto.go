package dto

import (
	"time"

	"filmhub/internal/http-api/models"
)

// RateMovieRequest for creating or overwriting a rating
type RateMovieRequest struct {
	Value float64 `json:"value" binding:"required,min=1,max=10"`
}

// UserRatingResponse is one of the caller's ratings joined with its movie.
type UserRatingResponse struct {
	ID        int64         `json:"id"`
	Value     float64       `json:"value"`
	MovieID   int64         `json:"movieId"`
	CreatedAt time.Time     `json:"createdAt"`
	Movie     *models.Movie `json:"movie,omitempty"`
}

// FromModelToUserRating converts a Rating model with a preloaded movie
func FromModelToUserRating(rating *models.Rating) UserRatingResponse {
	return UserRatingResponse{
		ID:        rating.ID,
		Value:     rating.Value,
		MovieID:   rating.MovieID,
		CreatedAt: rating.CreatedAt,
		Movie:     rating.Movie,
	}
}
