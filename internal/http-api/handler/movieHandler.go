package handler

import (
	"net/http"
	"time"

	"filmhub/internal/http-api/dto"
	"filmhub/internal/http-api/service"
	"filmhub/internal/http-api/upload"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	svc   service.MovieService
	store *upload.Store
}

func NewMovieHandler(svc service.MovieService, store *upload.Store) *MovieHandler {
	return &MovieHandler{svc: svc, store: store}
}

// RegisterRoutes registers the movie catalog routes. Reads take the optional
// guard so authenticated viewers get a personalized response; mutations take
// the required guard.
func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, optionalAuth gin.HandlerFunc) {
	rg.GET("", optionalAuth, h.List)
	rg.GET("/:id", optionalAuth, h.Get)
	rg.POST("", requireAuth, h.Create)
	rg.PUT("/:id", requireAuth, h.Update)
	rg.DELETE("/:id", requireAuth, h.Delete)
}

// List returns every movie with averageRating and, when authenticated, userRating
// GET /api/movies
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.svc.List(c.Request.Context(), viewerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch movies"})
		return
	}

	c.JSON(http.StatusOK, movies)
}

// Get returns one movie with its comments, ratings and aggregates
// GET /api/movies/:id
func (h *MovieHandler) Get(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	movie, err := h.svc.Get(c.Request.Context(), movieID, viewerID(c))
	if err != nil {
		if err == service.ErrMovieNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching movie details"})
		return
	}

	c.JSON(http.StatusOK, movie)
}

// Create adds a movie owned by the caller. The body is multipart so an image
// can ride along with the metadata fields.
// POST /api/movies
func (h *MovieHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fields := map[string]string{
		"title":       c.PostForm("title"),
		"director":    c.PostForm("director"),
		"description": c.PostForm("description"),
		"genre":       c.PostForm("genre"),
		"releaseDate": c.PostForm("releaseDate"),
	}

	var missing []fieldError
	for _, name := range []string{"title", "director", "description", "genre", "releaseDate"} {
		if fields[name] == "" {
			missing = append(missing, fieldError{Field: name, Message: name + " is required"})
		}
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": missing})
		return
	}

	releaseDate, err := time.Parse("2006-01-02", fields["releaseDate"])
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Enter a valid date (YYYY-MM-DD)"})
		return
	}

	var imagePath *string
	if file, err := c.FormFile("image"); err == nil {
		path, err := h.store.Save(file)
		if err != nil {
			if err == upload.ErrFileTooLarge || err == upload.ErrUnsupportedType {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving image"})
			return
		}
		imagePath = &path
	}

	movie, err := h.svc.Create(c.Request.Context(), userID, dto.CreateMovieInput{
		Title:       fields["title"],
		Director:    fields["director"],
		Description: fields["description"],
		Genre:       fields["genre"],
		ReleaseDate: releaseDate,
		ImagePath:   imagePath,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding movie"})
		return
	}

	c.JSON(http.StatusCreated, movie)
}

// Update applies a partial field update, owner only
// PUT /api/movies/:id
func (h *MovieHandler) Update(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  bindingErrors(err),
		})
		return
	}

	movie, err := h.svc.Update(c.Request.Context(), userID, movieID, req)
	if err != nil {
		switch err {
		case service.ErrMovieNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found"})
		case service.ErrNotMovieOwner:
			c.JSON(http.StatusForbidden, gin.H{"message": "You are not authorized to update this movie"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating movie"})
		}
		return
	}

	c.JSON(http.StatusOK, movie)
}

// Delete removes a movie and its dependent ratings, comments and watched marks
// DELETE /api/movies/:id
func (h *MovieHandler) Delete(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, movieID); err != nil {
		switch err {
		case service.ErrMovieNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found"})
		case service.ErrNotMovieOwner:
			c.JSON(http.StatusForbidden, gin.H{"message": "You are not authorized to delete this movie"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting movie"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Movie deleted successfully"})
}
