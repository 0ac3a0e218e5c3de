package handler

import (
	"net/http"

	"filmhub/internal/http-api/dto"
	"filmhub/internal/http-api/service"
	"filmhub/internal/http-api/upload"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the caller-scoped listings and the avatar upload.
type UserHandler struct {
	userService    service.UserService
	movieService   service.MovieService
	ratingService  service.RatingService
	watchedService service.WatchedService
}

func NewUserHandler(
	userService service.UserService,
	movieService service.MovieService,
	ratingService service.RatingService,
	watchedService service.WatchedService,
) *UserHandler {
	return &UserHandler{
		userService:    userService,
		movieService:   movieService,
		ratingService:  ratingService,
		watchedService: watchedService,
	}
}

// RegisterRoutes registers the user routes; every route requires authentication
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.Use(requireAuth)
	rg.GET("/ratings", h.Ratings)
	rg.GET("/watched", h.Watched)
	rg.GET("/added-movie", h.AddedMovies)
	rg.POST("/avatar", h.UploadAvatar)
}

// Ratings returns the caller's ratings joined with their movies, newest first
// GET /api/users/ratings
func (h *UserHandler) Ratings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ratings, err := h.ratingService.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching ratings"})
		return
	}

	c.JSON(http.StatusOK, ratings)
}

// Watched returns the caller's watched marks with their movies
// GET /api/users/watched
func (h *UserHandler) Watched(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	watched, err := h.watchedService.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching watched movies"})
		return
	}

	c.JSON(http.StatusOK, watched)
}

// AddedMovies returns the movies the caller has added to the catalog
// GET /api/users/added-movie
func (h *UserHandler) AddedMovies(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	movies, err := h.movieService.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if len(movies) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No movies found"})
		return
	}

	c.JSON(http.StatusOK, movies)
}

// UploadAvatar stores a new profile picture and replaces the previous one
// POST /api/users/avatar
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}

	avatarPath, err := h.userService.UpdateAvatar(userID, file)
	if err != nil {
		switch err {
		case upload.ErrFileTooLarge, upload.ErrUnsupportedType:
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case service.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving avatar"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AvatarResponse{AvatarPath: avatarPath})
}
