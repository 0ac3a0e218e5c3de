package service

import (
	"context"
	"errors"

	"filmhub/internal/http-api/dto"
	"filmhub/internal/http-api/repository"
)

var (
	ErrAlreadyWatched  = errors.New("movie already marked as watched")
	ErrWatchedNotFound = errors.New("movie not found in watched list")
)

type WatchedService interface {
	IsWatched(ctx context.Context, userID, movieID int64) (bool, error)
	Mark(ctx context.Context, userID, movieID int64) error
	Unmark(ctx context.Context, userID, movieID int64) error
	ListMine(ctx context.Context, userID int64) ([]dto.WatchedEntryResponse, error)
}

type watchedService struct {
	watchedRepo repository.WatchedRepository
}

func NewWatchedService(watchedRepo repository.WatchedRepository) WatchedService {
	return &watchedService{watchedRepo: watchedRepo}
}

// IsWatched is a pure existence check; an absent mark is false, never an error.
func (s *watchedService) IsWatched(ctx context.Context, userID, movieID int64) (bool, error) {
	return s.watchedRepo.Exists(ctx, userID, movieID)
}

// Mark inserts a watched mark; a second mark for the same pair is a conflict,
// not a no-op.
func (s *watchedService) Mark(ctx context.Context, userID, movieID int64) error {
	exists, err := s.watchedRepo.Exists(ctx, userID, movieID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyWatched
	}

	return s.watchedRepo.Add(ctx, userID, movieID)
}

// Unmark removes a watched mark if present.
func (s *watchedService) Unmark(ctx context.Context, userID, movieID int64) error {
	if err := s.watchedRepo.Remove(ctx, userID, movieID); err != nil {
		if errors.Is(err, repository.ErrWatchedMarkNotFound) {
			return ErrWatchedNotFound
		}
		return err
	}
	return nil
}

// ListMine returns the caller's watched marks joined with their movies.
func (s *watchedService) ListMine(ctx context.Context, userID int64) ([]dto.WatchedEntryResponse, error) {
	marks, err := s.watchedRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.WatchedEntryResponse, 0, len(marks))
	for i := range marks {
		resp = append(resp, dto.FromModelToWatchedEntry(&marks[i]))
	}
	return resp, nil
}
