package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"filmhub/internal/http-api/dto"
	"filmhub/internal/http-api/middleware"
	"filmhub/internal/http-api/models"
	"filmhub/internal/http-api/service"
	"filmhub/internal/http-api/upload"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMovieService mocks the MovieService interface
type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) Create(ctx context.Context, userID int64, input dto.CreateMovieInput) (*models.Movie, error) {
	args := m.Called(userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieService) List(ctx context.Context, viewerID *int64) ([]dto.MovieResponse, error) {
	args := m.Called(viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MovieResponse), args.Error(1)
}

func (m *MockMovieService) Get(ctx context.Context, id int64, viewerID *int64) (*dto.MovieDetailResponse, error) {
	args := m.Called(id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MovieDetailResponse), args.Error(1)
}

func (m *MockMovieService) Update(ctx context.Context, userID, id int64, req dto.UpdateMovieRequest) (*models.Movie, error) {
	args := m.Called(userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieService) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(userID, id)
	return args.Error(0)
}

func (m *MockMovieService) ListByOwner(ctx context.Context, userID int64) ([]models.Movie, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func testStore(t *testing.T) *upload.Store {
	t.Helper()
	store, err := upload.NewStore(t.TempDir(), 5<<20)
	assert.NoError(t, err)
	return store
}

// asUser fakes the auth guard's context wiring
func asUser(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}
}

func float64Ptr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64       { return &v }

func TestListMovies_AnonymousViewer(t *testing.T) {
	mockSvc := new(MockMovieService)
	h := NewMovieHandler(mockSvc, testStore(t))
	router := setupRouter()
	router.GET("/movies", h.List)

	movies := []dto.MovieResponse{
		{ID: 1, Title: "Inception", AverageRating: float64Ptr(8.0), UserRating: nil},
		{ID: 2, Title: "Heat", AverageRating: nil, UserRating: nil},
	}
	mockSvc.On("List", (*int64)(nil)).Return(movies, nil)

	req, _ := http.NewRequest("GET", "/movies", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []dto.MovieResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)
	assert.Equal(t, 8.0, *response[0].AverageRating)
	// A movie without ratings reports null, not zero
	assert.Nil(t, response[1].AverageRating)

	mockSvc.AssertExpectations(t)
}

func TestListMovies_AuthenticatedViewerIsPersonalized(t *testing.T) {
	mockSvc := new(MockMovieService)
	h := NewMovieHandler(mockSvc, testStore(t))
	router := setupRouter()
	router.GET("/movies", asUser(7), h.List)

	movies := []dto.MovieResponse{
		{ID: 1, Title: "Inception", AverageRating: float64Ptr(8.0), UserRating: float64Ptr(8.0)},
	}
	mockSvc.On("List", int64Ptr(7)).Return(movies, nil)

	req, _ := http.NewRequest("GET", "/movies", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestGetMovie_NotFound(t *testing.T) {
	mockSvc := new(MockMovieService)
	h := NewMovieHandler(mockSvc, testStore(t))
	router := setupRouter()
	router.GET("/movies/:id", h.Get)

	mockSvc.On("Get", int64(99), (*int64)(nil)).Return(nil, service.ErrMovieNotFound)

	req, _ := http.NewRequest("GET", "/movies/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Movie not found", response["message"])
}

func TestGetMovie_InvalidID(t *testing.T) {
	mockSvc := new(MockMovieService)
	h := NewMovieHandler(mockSvc, testStore(t))
	router := setupRouter()
	router.GET("/movies/:id", h.Get)

	req, _ := http.NewRequest("GET", "/movies/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestCreateMovie_MissingFields(t *testing.T) {
	mockSvc := new(MockMovieService)
	h := NewMovieHandler(mockSvc, testStore(t))
	router := setupRouter()
	router.POST("/movies", asUser(1), h.Create)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("title", "Inception")
	mw.WriteField("genre", "Sci-Fi")
	mw.Close()

	req, _ := http.NewRequest("POST", "/movies", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Validation failed", response.Message)
	assert.Len(t, response.Errors, 3) // director, description, releaseDate
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateMovie_Success(t *testing.T) {
	mockSvc := new(MockMovieService)
	h := NewMovieHandler(mockSvc, testStore(t))
	router := setupRouter()
	router.POST("/movies", asUser(1), h.Create)

	created := &models.Movie{ID: 5, Title: "Inception", UserID: 1}
	mockSvc.On("Create", int64(1), mock.MatchedBy(func(input dto.CreateMovieInput) bool {
		return input.Title == "Inception" && input.Director == "Christopher Nolan" && input.ImagePath == nil
	})).Return(created, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("title", "Inception")
	mw.WriteField("director", "Christopher Nolan")
	mw.WriteField("description", "A thief who steals corporate secrets.")
	mw.WriteField("genre", "Sci-Fi")
	mw.WriteField("releaseDate", "2010-07-16")
	mw.Close()

	req, _ := http.NewRequest("POST", "/movies", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response models.Movie
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, int64(5), response.ID)

	mockSvc.AssertExpectations(t)
}

func TestUpdateMovie_Forbidden(t *testing.T) {
	mockSvc := new(MockMovieService)
	h := NewMovieHandler(mockSvc, testStore(t))
	router := setupRouter()
	router.PUT("/movies/:id", asUser(2), h.Update)

	mockSvc.On("Update", int64(2), int64(5), mock.Anything).Return(nil, service.ErrNotMovieOwner)

	body := []byte(`{"title":"Renamed"}`)
	req, _ := http.NewRequest("PUT", "/movies/5", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateMovie_NotFound(t *testing.T) {
	mockSvc := new(MockMovieService)
	h := NewMovieHandler(mockSvc, testStore(t))
	router := setupRouter()
	router.PUT("/movies/:id", asUser(2), h.Update)

	mockSvc.On("Update", int64(2), int64(99), mock.Anything).Return(nil, service.ErrMovieNotFound)

	body := []byte(`{"title":"Renamed"}`)
	req, _ := http.NewRequest("PUT", "/movies/99", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMovie_Success(t *testing.T) {
	mockSvc := new(MockMovieService)
	h := NewMovieHandler(mockSvc, testStore(t))
	router := setupRouter()
	router.DELETE("/movies/:id", asUser(1), h.Delete)

	mockSvc.On("Delete", int64(1), int64(5)).Return(nil)

	req, _ := http.NewRequest("DELETE", "/movies/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestDeleteMovie_Forbidden(t *testing.T) {
	mockSvc := new(MockMovieService)
	h := NewMovieHandler(mockSvc, testStore(t))
	router := setupRouter()
	router.DELETE("/movies/:id", asUser(2), h.Delete)

	mockSvc.On("Delete", int64(2), int64(5)).Return(service.ErrNotMovieOwner)

	req, _ := http.NewRequest("DELETE", "/movies/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
