package repository

import (
	"context"
	"fmt"

	"filmhub/internal/http-api/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(ctx context.Context, m *models.Movie) error
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	GetByIDWithDetails(ctx context.Context, id int64) (*models.Movie, error)
	GetAllWithRatings(ctx context.Context) ([]models.Movie, error)
	GetByOwner(ctx context.Context, userID int64) ([]models.Movie, error)
	Update(ctx context.Context, m *models.Movie) error
	DeleteWithDependents(ctx context.Context, id int64) error
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	// GORM populates m.ID and m.CreatedAt
	return nil
}

func (r *movieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByIDWithDetails loads a movie together with its owner, comments
// (comment authors included, newest first) and ratings.
func (r *movieRepository) GetByIDWithDetails(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Comments.User").
		Preload("Ratings").
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetAllWithRatings loads every movie with its live rating rows so the mean
// can be recomputed on each read.
func (r *movieRepository) GetAllWithRatings(ctx context.Context) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Preload("Ratings").
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return list, nil
}

func (r *movieRepository) GetByOwner(ctx context.Context, userID int64) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list movies by owner: %w", err)
	}
	return list, nil
}

func (r *movieRepository) Update(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

// DeleteWithDependents removes the movie's ratings, comments and watched
// marks, then the movie itself, in one transaction.
func (r *movieRepository) DeleteWithDependents(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return fmt.Errorf("delete movie ratings: %w", err)
		}
		if err := tx.Where("movie_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("delete movie comments: %w", err)
		}
		if err := tx.Where("movie_id = ?", id).Delete(&models.WatchedMovie{}).Error; err != nil {
			return fmt.Errorf("delete watched marks: %w", err)
		}
		if err := tx.Delete(&models.Movie{}, id).Error; err != nil {
			return fmt.Errorf("delete movie: %w", err)
		}
		return nil
	})
}
