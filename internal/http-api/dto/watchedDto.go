package dto

import (
	"time"

	"filmhub/internal/http-api/models"
)

// WatchedStatusResponse reports whether the caller has marked a movie watched.
type WatchedStatusResponse struct {
	IsWatched bool `json:"isWatched"`
}

// WatchedMovieSummary is the trimmed movie projection on the watched list.
type WatchedMovieSummary struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	ImagePath *string `json:"imagePath"`
}

// WatchedEntryResponse is one watched mark joined with its movie.
type WatchedEntryResponse struct {
	MovieID   int64                `json:"movieId"`
	CreatedAt time.Time            `json:"createdAt"`
	Movie     *WatchedMovieSummary `json:"movie,omitempty"`
}

// FromModelToWatchedEntry converts a WatchedMovie model with a preloaded movie
func FromModelToWatchedEntry(mark *models.WatchedMovie) WatchedEntryResponse {
	resp := WatchedEntryResponse{
		MovieID:   mark.MovieID,
		CreatedAt: mark.CreatedAt,
	}
	if mark.Movie != nil {
		resp.Movie = &WatchedMovieSummary{
			ID:        mark.Movie.ID,
			Title:     mark.Movie.Title,
			ImagePath: mark.Movie.ImagePath,
		}
	}
	return resp
}
