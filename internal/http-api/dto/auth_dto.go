package dto

import (
	"time"

	"filmhub/internal/http-api/models"
)

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	UserName  string `json:"userName" binding:"required,alphanum,min=3,max=50"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	BirthDate string `json:"birthDate" binding:"required,datetime=2006-01-02"`
}

// LoginRequest: payload for user login; the identifier may be an email or a username
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// UserResponse: public projection of a user, returned on login
type UserResponse struct {
	ID         int64   `json:"id"`
	UserName   string  `json:"userName"`
	Email      string  `json:"email"`
	AvatarPath *string `json:"avatarPath"`
}

// UserProfileResponse: public fields of a freshly registered user
type UserProfileResponse struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	UserName   string    `json:"userName"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	BirthDate  time.Time `json:"birthDate"`
	AvatarPath *string   `json:"avatarPath"`
}

// LoginResponse: response payload after successful authentication
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// RegisterResponse: response payload after successful registration
type RegisterResponse struct {
	Message string              `json:"message"`
	User    UserProfileResponse `json:"user"`
}

// AvatarResponse: response payload after an avatar upload
type AvatarResponse struct {
	AvatarPath string `json:"avatarPath"`
}

// FromModelToUserResponse converts a User model to its login projection
func FromModelToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		UserName:   user.UserName,
		Email:      user.Email,
		AvatarPath: user.AvatarPath,
	}
}

// FromModelToUserProfile converts a User model to its public profile
func FromModelToUserProfile(user *models.User) UserProfileResponse {
	return UserProfileResponse{
		ID:         user.ID,
		Email:      user.Email,
		UserName:   user.UserName,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		BirthDate:  user.BirthDate,
		AvatarPath: user.AvatarPath,
	}
}
