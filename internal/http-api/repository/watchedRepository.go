package repository

import (
	"context"
	"errors"
	"fmt"

	"filmhub/internal/http-api/models"

	"gorm.io/gorm"
)

var ErrWatchedMarkNotFound = errors.New("watched mark not found")

type WatchedRepository interface {
	Add(ctx context.Context, userID, movieID int64) error
	Remove(ctx context.Context, userID, movieID int64) error
	Exists(ctx context.Context, userID, movieID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]models.WatchedMovie, error)
}

type watchedRepository struct {
	db *gorm.DB
}

func NewWatchedRepository(db *gorm.DB) WatchedRepository {
	return &watchedRepository{db: db}
}

func (r *watchedRepository) Add(ctx context.Context, userID, movieID int64) error {
	mark := &models.WatchedMovie{
		UserID:  userID,
		MovieID: movieID,
	}

	if err := r.db.WithContext(ctx).Create(mark).Error; err != nil {
		return fmt.Errorf("add watched mark: %w", err)
	}
	return nil
}

func (r *watchedRepository) Remove(ctx context.Context, userID, movieID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&models.WatchedMovie{})

	if result.Error != nil {
		return fmt.Errorf("remove watched mark: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrWatchedMarkNotFound
	}

	return nil
}

func (r *watchedRepository) Exists(ctx context.Context, userID, movieID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WatchedMovie{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *watchedRepository) ListByUser(ctx context.Context, userID int64) ([]models.WatchedMovie, error) {
	var marks []models.WatchedMovie

	if err := r.db.WithContext(ctx).
		Preload("Movie").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&marks).Error; err != nil {
		return nil, fmt.Errorf("list watched movies: %w", err)
	}

	return marks, nil
}
