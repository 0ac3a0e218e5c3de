package handler

import (
	"net/http"
	"strconv"

	"filmhub/internal/http-api/dto"
	"filmhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterRoutes registers the comment thread routes nested under a movie
func (h *CommentHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/:id/comments", h.List)
	rg.POST("/:id/comments", requireAuth, h.Add)
	rg.DELETE("/:id/comments/:commentId", requireAuth, h.Remove)
}

// List returns a movie's comments, newest first
// GET /api/movies/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListFor(c.Request.Context(), movieID)
	if err != nil {
		if err == service.ErrMovieNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// Add appends a comment to a movie's thread
// POST /api/movies/:id/comments
func (h *CommentHandler) Add(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Content is required"})
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), userID, movieID, req.Content)
	if err != nil {
		switch err {
		case service.ErrEmptyContent:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Content is required"})
		case service.ErrMovieNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while adding the comment"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added successfully",
		"comment": comment,
	})
}

// Remove deletes the caller's own comment from a movie's thread. A comment
// that doesn't exist, belongs to another movie or belongs to another user
// yields the same not-found response.
// DELETE /api/movies/:id/comments/:commentId
func (h *CommentHandler) Remove(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}
	commentID, err := strconv.ParseInt(c.Param("commentId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid comment ID"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.commentService.Remove(c.Request.Context(), userID, movieID, commentID); err != nil {
		if err == service.ErrCommentNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Comment not found or you are not authorized to delete this comment"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
