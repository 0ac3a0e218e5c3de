package repository

import (
	"filmhub/internal/http-api/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id int64) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByUserName(userName string) (*models.User, error)
	FindByIdentifier(identifier string) (*models.User, error)
	UpdateAvatarPath(id int64, avatarPath string) error
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id int64) (*models.User, error) {
	var user models.User
	// return nil on error instead of a zero-value struct, which GORM would
	// otherwise treat as a found record
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUserName(userName string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("user_name = ?", userName).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIdentifier matches the identifier against email or username in a
// single query (exact, case-sensitive).
func (r *userRepository) FindByIdentifier(identifier string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ? OR user_name = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateAvatarPath(id int64, avatarPath string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("avatar_path", avatarPath).Error
}
