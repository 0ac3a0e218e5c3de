package service

import (
	"context"
	"testing"

	"filmhub/internal/http-api/models"
	"filmhub/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockWatchedRepository mocks the WatchedRepository interface
type MockWatchedRepository struct {
	mock.Mock
}

func (m *MockWatchedRepository) Add(ctx context.Context, userID, movieID int64) error {
	args := m.Called(userID, movieID)
	return args.Error(0)
}

func (m *MockWatchedRepository) Remove(ctx context.Context, userID, movieID int64) error {
	args := m.Called(userID, movieID)
	return args.Error(0)
}

func (m *MockWatchedRepository) Exists(ctx context.Context, userID, movieID int64) (bool, error) {
	args := m.Called(userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWatchedRepository) ListByUser(ctx context.Context, userID int64) ([]models.WatchedMovie, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WatchedMovie), args.Error(1)
}

var _ repository.WatchedRepository = (*MockWatchedRepository)(nil)

func TestMark_FirstTime(t *testing.T) {
	watchedRepo := new(MockWatchedRepository)
	svc := NewWatchedService(watchedRepo)

	watchedRepo.On("Exists", int64(3), int64(5)).Return(false, nil)
	watchedRepo.On("Add", int64(3), int64(5)).Return(nil)

	require.NoError(t, svc.Mark(context.Background(), 3, 5))
	watchedRepo.AssertExpectations(t)
}

func TestMark_SecondTimeConflicts(t *testing.T) {
	watchedRepo := new(MockWatchedRepository)
	svc := NewWatchedService(watchedRepo)

	watchedRepo.On("Exists", int64(3), int64(5)).Return(true, nil)

	err := svc.Mark(context.Background(), 3, 5)

	assert.ErrorIs(t, err, ErrAlreadyWatched)
	watchedRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestUnmark_NotMarked(t *testing.T) {
	watchedRepo := new(MockWatchedRepository)
	svc := NewWatchedService(watchedRepo)

	watchedRepo.On("Remove", int64(3), int64(5)).Return(repository.ErrWatchedMarkNotFound)

	err := svc.Unmark(context.Background(), 3, 5)

	assert.ErrorIs(t, err, ErrWatchedNotFound)
}

func TestIsWatched_AbsentIsFalse(t *testing.T) {
	watchedRepo := new(MockWatchedRepository)
	svc := NewWatchedService(watchedRepo)

	watchedRepo.On("Exists", int64(3), int64(99)).Return(false, nil)

	watched, err := svc.IsWatched(context.Background(), 3, 99)

	require.NoError(t, err)
	assert.False(t, watched)
}

func TestWatchedListMine(t *testing.T) {
	watchedRepo := new(MockWatchedRepository)
	svc := NewWatchedService(watchedRepo)

	watchedRepo.On("ListByUser", int64(3)).Return([]models.WatchedMovie{
		{ID: 1, UserID: 3, MovieID: 5, Movie: &models.Movie{ID: 5, Title: "Heat"}},
	}, nil)

	entries, err := svc.ListMine(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Movie)
	assert.Equal(t, "Heat", entries[0].Movie.Title)
}
