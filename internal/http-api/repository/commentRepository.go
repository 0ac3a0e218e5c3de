package repository

import (
	"errors"

	"filmhub/internal/http-api/models"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByMovie(movieID int64) ([]models.Comment, error)
	DeleteOwned(commentID, movieID, userID int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create a new comment
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByMovie retrieves all comments for a movie with their authors, newest first
func (r *commentRepository) GetByMovie(movieID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("movie_id = ?", movieID).
		Preload("User").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteOwned deletes a comment only when it belongs to the given movie and
// was written by the given user. An absent comment and someone else's comment
// are indistinguishable to the caller.
func (r *commentRepository) DeleteOwned(commentID, movieID, userID int64) error {
	result := r.db.Where("id = ? AND movie_id = ? AND user_id = ?", commentID, movieID, userID).
		Delete(&models.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
