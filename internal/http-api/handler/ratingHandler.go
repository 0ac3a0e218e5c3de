package handler

import (
	"net/http"

	"filmhub/internal/http-api/dto"
	"filmhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers the rating routes nested under a movie
func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.POST("/:id/rate", requireAuth, h.Rate)
	rg.DELETE("/:id/rate", requireAuth, h.Unrate)
}

// Rate creates or overwrites the caller's rating for a movie
// POST /api/movies/:id/rate
func (h *RatingHandler) Rate(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.RateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rating value must be between 1 and 10"})
		return
	}

	if err := h.ratingService.Rate(c.Request.Context(), userID, movieID, req.Value); err != nil {
		switch err {
		case service.ErrInvalidRatingValue:
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case service.ErrMovieNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving rating"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating saved successfully"})
}

// Unrate removes the caller's rating for a movie
// DELETE /api/movies/:id/rate
func (h *RatingHandler) Unrate(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.ratingService.Unrate(c.Request.Context(), userID, movieID); err != nil {
		if err == service.ErrRatingNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Rating not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error removing rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating removed successfully"})
}
