package service

import (
	"errors"
	"mime/multipart"

	"filmhub/internal/http-api/repository"
	"filmhub/internal/http-api/upload"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	UpdateAvatar(userID int64, file *multipart.FileHeader) (string, error)
}

type userService struct {
	userRepo repository.UserRepository
	store    *upload.Store
}

func NewUserService(userRepo repository.UserRepository, store *upload.Store) UserService {
	return &userService{
		userRepo: userRepo,
		store:    store,
	}
}

// UpdateAvatar stores the uploaded file, records its path on the user and
// removes the previous avatar best-effort. A failed removal never fails the
// request.
func (s *userService) UpdateAvatar(userID int64, file *multipart.FileHeader) (string, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	avatarPath, err := s.store.Save(file)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.UpdateAvatarPath(userID, avatarPath); err != nil {
		s.store.Remove(avatarPath)
		return "", err
	}

	if user.AvatarPath != nil {
		s.store.Remove(*user.AvatarPath)
	}

	return avatarPath, nil
}
