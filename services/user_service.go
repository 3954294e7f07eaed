package services

import (
	"errors"
	"time"

	"github.com/linskybing/gpu-reserve-go/dto"
	"github.com/linskybing/gpu-reserve-go/middleware"
	"github.com/linskybing/gpu-reserve-go/models"
	"github.com/linskybing/gpu-reserve-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = 24 * time.Hour

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Register(input dto.CreateUserInput) (models.User, error) {
	_, err := s.Repos.User.GetByUsername(input.Username)
	if err == nil {
		return models.User{}, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrPasswordHashFailure
	}

	user := models.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		Role:     models.UserRoleUser,
	}
	if err := s.Repos.User.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) Login(username, password string) (models.User, string, error) {
	user, err := s.Repos.User.GetByUsername(username)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.UID, user.Username, user.IsAdmin(), tokenLifetime)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}
