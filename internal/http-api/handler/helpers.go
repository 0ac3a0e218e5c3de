package handler

import (
	"errors"
	"net/http"
	"strconv"

	"filmhub/internal/http-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// movieIDParam parses the :id path segment; on failure it has already
// written the 400 response.
func movieIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid movie ID"})
		return 0, false
	}
	return id, true
}

// currentUserID reads the id set by the auth guard; on failure it has
// already written the 403 response.
func currentUserID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": "User not authenticated"})
		return 0, false
	}
	return userID, true
}

// viewerID returns the authenticated user's id as an optional value for
// routes that personalize but do not require authentication.
func viewerID(c *gin.Context) *int64 {
	if userID, ok := middleware.CurrentUserID(c); ok {
		return &userID
	}
	return nil
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// bindingErrors turns a gin binding failure into the structured field error
// list the API reports on validation failures.
func bindingErrors(err error) []fieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []fieldError{{Field: "", Message: err.Error()}}
	}

	list := make([]fieldError, 0, len(verrs))
	for _, ve := range verrs {
		list = append(list, fieldError{
			Field:   ve.Field(),
			Message: validationMessage(ve),
		})
	}
	return list
}

func validationMessage(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return ve.Field() + " is required"
	case "email":
		return "Enter a valid email"
	case "alphanum":
		return ve.Field() + " must be alphanumeric"
	case "min":
		return ve.Field() + " is too short or too small"
	case "max":
		return ve.Field() + " is too long or too large"
	case "datetime":
		return "Enter a valid date (YYYY-MM-DD)"
	default:
		return ve.Field() + " is invalid"
	}
}
