package handler

import (
	"net/http"

	"filmhub/internal/http-api/dto"
	"filmhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type WatchedHandler struct {
	watchedService service.WatchedService
}

func NewWatchedHandler(watchedService service.WatchedService) *WatchedHandler {
	return &WatchedHandler{watchedService: watchedService}
}

// RegisterRoutes registers the watched-mark routes nested under a movie
func (h *WatchedHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/:id/watched", requireAuth, h.Status)
	rg.POST("/:id/watched", requireAuth, h.Mark)
	rg.DELETE("/:id/watched", requireAuth, h.Unmark)
}

// Status reports whether the caller has marked the movie watched; an absent
// mark is false, never a 404
// GET /api/movies/:id/watched
func (h *WatchedHandler) Status(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	isWatched, err := h.watchedService.IsWatched(c.Request.Context(), userID, movieID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error checking watched status"})
		return
	}

	c.JSON(http.StatusOK, dto.WatchedStatusResponse{IsWatched: isWatched})
}

// Mark flags the movie as watched; marking twice is a conflict
// POST /api/movies/:id/watched
func (h *WatchedHandler) Mark(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.watchedService.Mark(c.Request.Context(), userID, movieID); err != nil {
		if err == service.ErrAlreadyWatched {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Movie already marked as watched"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error marking movie as watched"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Movie marked as watched"})
}

// Unmark removes the watched flag
// DELETE /api/movies/:id/watched
func (h *WatchedHandler) Unmark(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.watchedService.Unmark(c.Request.Context(), userID, movieID); err != nil {
		if err == service.ErrWatchedNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found in watched list"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error removing movie from watched list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Movie removed from watched list"})
}
