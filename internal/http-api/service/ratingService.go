package service

import (
	"context"
	"errors"

	"filmhub/internal/http-api/dto"
	"filmhub/internal/http-api/models"
	"filmhub/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrRatingNotFound     = errors.New("rating not found")
	ErrInvalidRatingValue = errors.New("rating value must be between 1 and 10")
)

// Rating bounds, inclusive.
const (
	MinRatingValue = 1
	MaxRatingValue = 10
)

type RatingService interface {
	Rate(ctx context.Context, userID, movieID int64, value float64) error
	Unrate(ctx context.Context, userID, movieID int64) error
	ListMine(ctx context.Context, userID int64) ([]dto.UserRatingResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	movieRepo  repository.MovieRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, movieRepo repository.MovieRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		movieRepo:  movieRepo,
	}
}

// Rate records the user's score for a movie with upsert semantics: a second
// submission overwrites the previous value instead of adding a row.
func (s *ratingService) Rate(ctx context.Context, userID, movieID int64, value float64) error {
	if value < MinRatingValue || value > MaxRatingValue {
		return ErrInvalidRatingValue
	}

	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return err
	}

	rating := &models.Rating{
		UserID:  userID,
		MovieID: movieID,
		Value:   value,
	}
	return s.ratingRepo.Upsert(rating)
}

// Unrate deletes the caller's rating for a movie if one exists.
func (s *ratingService) Unrate(ctx context.Context, userID, movieID int64) error {
	if err := s.ratingRepo.Delete(userID, movieID); err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return ErrRatingNotFound
		}
		return err
	}
	return nil
}

// ListMine returns the caller's ratings joined with their movies, newest first.
func (s *ratingService) ListMine(ctx context.Context, userID int64) ([]dto.UserRatingResponse, error) {
	ratings, err := s.ratingRepo.GetByUserWithMovies(userID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.UserRatingResponse, 0, len(ratings))
	for i := range ratings {
		resp = append(resp, dto.FromModelToUserRating(&ratings[i]))
	}
	return resp, nil
}

// AverageRating is the arithmetic mean of the given live rating rows, or nil
// when there are none. It is recomputed on every read; an empty set is never
// reported as zero.
func AverageRating(ratings []models.Rating) *float64 {
	if len(ratings) == 0 {
		return nil
	}
	var sum float64
	for _, r := range ratings {
		sum += r.Value
	}
	avg := sum / float64(len(ratings))
	return &avg
}

// ViewerRating picks the viewer's own rating value out of a movie's rating
// rows; nil for anonymous viewers and viewers who have not rated.
func ViewerRating(ratings []models.Rating, viewerID *int64) *float64 {
	if viewerID == nil {
		return nil
	}
	for _, r := range ratings {
		if r.UserID == *viewerID {
			v := r.Value
			return &v
		}
	}
	return nil
}
