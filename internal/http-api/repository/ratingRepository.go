package repository

import (
	"errors"

	"filmhub/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRatingNotFound = errors.New("rating not found")

type RatingRepository interface {
	Upsert(rating *models.Rating) error
	Delete(userID, movieID int64) error
	GetByUserAndMovie(userID, movieID int64) (*models.Rating, error)
	GetByUserWithMovies(userID int64) ([]models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts the rating or overwrites the value of the existing
// (movie, user) row. The conflict target is the composite unique index, so
// the storage engine serializes concurrent submissions from the same user.
func (r *ratingRepository) Upsert(rating *models.Rating) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "movie_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(rating).Error
}

// Delete removes a rating by user and movie
func (r *ratingRepository) Delete(userID, movieID int64) error {
	result := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).Delete(&models.Rating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRatingNotFound
	}
	return nil
}

// GetByUserAndMovie retrieves a user's rating for a specific movie
func (r *ratingRepository) GetByUserAndMovie(userID, movieID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByUserWithMovies retrieves every rating owned by the user, joined with
// its movie, newest first.
func (r *ratingRepository) GetByUserWithMovies(userID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("user_id = ?", userID).
		Preload("Movie").
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
