package service

import (
	"context"
	"errors"
	"time"

	"filmhub/internal/http-api/dto"
	"filmhub/internal/http-api/models"
	"filmhub/internal/http-api/repository"
	"filmhub/internal/http-api/upload"

	"gorm.io/gorm"
)

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrNotMovieOwner = errors.New("you are not the owner of this movie")
)

type MovieService interface {
	Create(ctx context.Context, userID int64, input dto.CreateMovieInput) (*models.Movie, error)
	List(ctx context.Context, viewerID *int64) ([]dto.MovieResponse, error)
	Get(ctx context.Context, id int64, viewerID *int64) (*dto.MovieDetailResponse, error)
	Update(ctx context.Context, userID, id int64, req dto.UpdateMovieRequest) (*models.Movie, error)
	Delete(ctx context.Context, userID, id int64) error
	ListByOwner(ctx context.Context, userID int64) ([]models.Movie, error)
}

type movieService struct {
	movieRepo repository.MovieRepository
	store     *upload.Store
}

func NewMovieService(movieRepo repository.MovieRepository, store *upload.Store) MovieService {
	return &movieService{
		movieRepo: movieRepo,
		store:     store,
	}
}

func (s *movieService) Create(ctx context.Context, userID int64, input dto.CreateMovieInput) (*models.Movie, error) {
	movie := &models.Movie{
		Title:       input.Title,
		Director:    input.Director,
		Description: input.Description,
		Genre:       input.Genre,
		ReleaseDate: input.ReleaseDate,
		ImagePath:   input.ImagePath,
		UserID:      userID,
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// List returns every movie annotated with its aggregate rating and, for an
// authenticated viewer, their own rating. Both aggregates are computed from
// the live rating rows on each call.
func (s *movieService) List(ctx context.Context, viewerID *int64) ([]dto.MovieResponse, error) {
	movies, err := s.movieRepo.GetAllWithRatings(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.MovieResponse, 0, len(movies))
	for i := range movies {
		m := &movies[i]
		resp = append(resp, dto.FromModelToMovieResponse(m, AverageRating(m.Ratings), ViewerRating(m.Ratings, viewerID)))
	}
	return resp, nil
}

func (s *movieService) Get(ctx context.Context, id int64, viewerID *int64) (*dto.MovieDetailResponse, error) {
	movie, err := s.movieRepo.GetByIDWithDetails(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	detail := dto.FromModelToMovieDetail(movie, AverageRating(movie.Ratings), ViewerRating(movie.Ratings, viewerID))
	return &detail, nil
}

// Update applies a full or partial field update. Only the owner may mutate a
// movie; a missing movie is reported before the ownership check.
func (s *movieService) Update(ctx context.Context, userID, id int64, req dto.UpdateMovieRequest) (*models.Movie, error) {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if movie.UserID != userID {
		return nil, ErrNotMovieOwner
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Director != nil {
		movie.Director = *req.Director
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.Genre != nil {
		movie.Genre = *req.Genre
	}
	if req.ReleaseDate != nil {
		releaseDate, err := time.Parse("2006-01-02", *req.ReleaseDate)
		if err != nil {
			return nil, err
		}
		movie.ReleaseDate = releaseDate
	}

	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// Delete removes a movie and all its dependent rows atomically. The stored
// image file is removed best-effort afterwards; a leftover file never fails
// the request.
func (s *movieService) Delete(ctx context.Context, userID, id int64) error {
	movie, err := s.movieRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return err
	}

	if movie.UserID != userID {
		return ErrNotMovieOwner
	}

	if err := s.movieRepo.DeleteWithDependents(ctx, id); err != nil {
		return err
	}

	if movie.ImagePath != nil {
		s.store.Remove(*movie.ImagePath)
	}
	return nil
}

// ListByOwner returns the movies added by the given user.
func (s *movieService) ListByOwner(ctx context.Context, userID int64) ([]models.Movie, error) {
	return s.movieRepo.GetByOwner(ctx, userID)
}
