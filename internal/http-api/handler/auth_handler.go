package handler

import (
	"net/http"
	"time"

	"filmhub/internal/http-api/dto"
	"filmhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers the authentication routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
}

// Register creates a new account
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  bindingErrors(err),
		})
		return
	}

	// Format already validated by the datetime binding tag
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Enter a valid date (YYYY-MM-DD)"})
		return
	}

	user, err := h.authService.Register(service.RegisterInput{
		Email:     req.Email,
		UserName:  req.UserName,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: birthDate,
	})
	if err != nil {
		switch err {
		case service.ErrEmailInUse:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already in use"})
		case service.ErrUserNameInUse:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already in use"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred during registration"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully",
		User:    dto.FromModelToUserProfile(user),
	})
}

// Login authenticates by email or username and returns a signed token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email/username and password are required"})
		return
	}

	token, user, err := h.authService.Login(req.Identifier, req.Password)
	if err != nil {
		// Uniform message: never reveal whether the identifier exists
		if err == service.ErrInvalidCredentials {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred during login"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		User:    dto.FromModelToUserResponse(user),
		Token:   token,
	})
}
