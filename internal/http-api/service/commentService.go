package service

import (
	"context"
	"errors"
	"strings"

	"filmhub/internal/http-api/dto"
	"filmhub/internal/http-api/models"
	"filmhub/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found or you are not authorized to delete this comment")
	ErrEmptyContent    = errors.New("content is required")
)

type CommentService interface {
	Add(ctx context.Context, userID, movieID int64, content string) (*dto.CommentResponse, error)
	ListFor(ctx context.Context, movieID int64) ([]dto.CommentResponse, error)
	Remove(ctx context.Context, userID, movieID, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	movieRepo   repository.MovieRepository
}

func NewCommentService(commentRepo repository.CommentRepository, movieRepo repository.MovieRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		movieRepo:   movieRepo,
	}
}

// Add appends a comment to a movie's thread.
func (s *commentService) Add(ctx context.Context, userID, movieID int64, content string) (*dto.CommentResponse, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		Content: content,
		MovieID: movieID,
		UserID:  userID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	resp := dto.FromModelToCommentResponse(comment)
	return &resp, nil
}

// ListFor returns a movie's comments with their authors, newest first.
func (s *commentService) ListFor(ctx context.Context, movieID int64) ([]dto.CommentResponse, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.GetByMovie(movieID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, dto.FromModelToCommentResponse(&comments[i]))
	}
	return resp, nil
}

// Remove deletes a comment only when it belongs to the movie and the caller
// wrote it. Both failure modes collapse into ErrCommentNotFound.
func (s *commentService) Remove(ctx context.Context, userID, movieID, commentID int64) error {
	if err := s.commentRepo.DeleteOwned(commentID, movieID, userID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}
