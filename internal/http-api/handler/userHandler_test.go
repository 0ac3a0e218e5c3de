package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"filmhub/internal/http-api/dto"
	"filmhub/internal/http-api/models"
	"filmhub/internal/http-api/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserService mocks the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) UpdateAvatar(userID int64, file *multipart.FileHeader) (string, error) {
	args := m.Called(userID, file)
	return args.String(0), args.Error(1)
}

func newUserHandlerMocks() (*UserHandler, *MockUserService, *MockMovieService, *MockRatingService, *MockWatchedService) {
	userSvc := new(MockUserService)
	movieSvc := new(MockMovieService)
	ratingSvc := new(MockRatingService)
	watchedSvc := new(MockWatchedService)
	return NewUserHandler(userSvc, movieSvc, ratingSvc, watchedSvc), userSvc, movieSvc, ratingSvc, watchedSvc
}

func TestUserRatings_Success(t *testing.T) {
	h, _, _, ratingSvc, _ := newUserHandlerMocks()
	router := setupRouter()
	router.GET("/users/ratings", asUser(3), h.Ratings)

	ratings := []dto.UserRatingResponse{
		{ID: 1, Value: 8, MovieID: 5},
	}
	ratingSvc.On("ListMine", int64(3)).Return(ratings, nil)

	req, _ := http.NewRequest("GET", "/users/ratings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []dto.UserRatingResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 1)
	assert.Equal(t, 8.0, response[0].Value)
}

func TestUserWatched_EmptyListIsOK(t *testing.T) {
	h, _, _, _, watchedSvc := newUserHandlerMocks()
	router := setupRouter()
	router.GET("/users/watched", asUser(3), h.Watched)

	watchedSvc.On("ListMine", int64(3)).Return([]dto.WatchedEntryResponse{}, nil)

	req, _ := http.NewRequest("GET", "/users/watched", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAddedMovies_Success(t *testing.T) {
	h, _, movieSvc, _, _ := newUserHandlerMocks()
	router := setupRouter()
	router.GET("/users/added-movie", asUser(3), h.AddedMovies)

	movies := []models.Movie{{ID: 5, Title: "Inception", UserID: 3}}
	movieSvc.On("ListByOwner", int64(3)).Return(movies, nil)

	req, _ := http.NewRequest("GET", "/users/added-movie", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAddedMovies_NoneFound(t *testing.T) {
	h, _, movieSvc, _, _ := newUserHandlerMocks()
	router := setupRouter()
	router.GET("/users/added-movie", asUser(3), h.AddedMovies)

	movieSvc.On("ListByOwner", int64(3)).Return([]models.Movie{}, nil)

	req, _ := http.NewRequest("GET", "/users/added-movie", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "No movies found", response["message"])
}

func TestUploadAvatar_NoFile(t *testing.T) {
	h, userSvc, _, _, _ := newUserHandlerMocks()
	router := setupRouter()
	router.POST("/users/avatar", asUser(3), h.UploadAvatar)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.Close()

	req, _ := http.NewRequest("POST", "/users/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "No file uploaded", response["message"])
	userSvc.AssertNotCalled(t, "UpdateAvatar", mock.Anything, mock.Anything)
}

func TestUploadAvatar_Success(t *testing.T) {
	h, userSvc, _, _, _ := newUserHandlerMocks()
	router := setupRouter()
	router.POST("/users/avatar", asUser(3), h.UploadAvatar)

	userSvc.On("UpdateAvatar", int64(3), mock.AnythingOfType("*multipart.FileHeader")).
		Return("/uploads/abc.png", nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("avatar", "me.png")
	part.Write([]byte("not really a png, the service is mocked"))
	mw.Close()

	req, _ := http.NewRequest("POST", "/users/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.AvatarResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "/uploads/abc.png", response.AvatarPath)
}

func TestUploadAvatar_UnsupportedType(t *testing.T) {
	h, userSvc, _, _, _ := newUserHandlerMocks()
	router := setupRouter()
	router.POST("/users/avatar", asUser(3), h.UploadAvatar)

	userSvc.On("UpdateAvatar", int64(3), mock.AnythingOfType("*multipart.FileHeader")).
		Return("", upload.ErrUnsupportedType)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("avatar", "notes.txt")
	part.Write([]byte("plain text"))
	mw.Close()

	req, _ := http.NewRequest("POST", "/users/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
