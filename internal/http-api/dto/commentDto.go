package dto

import (
	"time"

	"filmhub/internal/http-api/models"
)

// CreateCommentRequest: payload for adding a comment to a movie
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentAuthor annotates a comment with its author's public identity.
type CommentAuthor struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
}

// CommentResponse for returning a comment with its author
type CommentResponse struct {
	ID        int64          `json:"id"`
	Content   string         `json:"content"`
	MovieID   int64          `json:"movieId"`
	UserID    int64          `json:"userId"`
	CreatedAt time.Time      `json:"createdAt"`
	User      *CommentAuthor `json:"user,omitempty"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse
func FromModelToCommentResponse(comment *models.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		MovieID:   comment.MovieID,
		UserID:    comment.UserID,
		CreatedAt: comment.CreatedAt,
	}
	if comment.User != nil {
		resp.User = &CommentAuthor{ID: comment.User.ID, UserName: comment.User.UserName}
	}
	return resp
}
