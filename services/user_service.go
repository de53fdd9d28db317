package services

import (
	"errors"
	"time"

	"github.com/openhaul/loadboard/dto"
	"github.com/openhaul/loadboard/middleware"
	"github.com/openhaul/loadboard/models"
	"github.com/openhaul/loadboard/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

const tokenLifetime = 24 * time.Hour

type UserService struct {
	repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{repos: repos}
}

func (s *UserService) RegisterUser(input dto.CreateUserInput) error {
	_, err := s.repos.User.GetUserByUsername(input.Username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	role := string(models.UserRoleCarrier)
	if input.Role != nil {
		role = *input.Role
	}

	user := models.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		Company:  input.Company,
		Role:     role,
	}

	return s.repos.User.SaveUser(&user)
}

func (s *UserService) LoginUser(username, password string) (models.User, string, error) {
	user, err := s.repos.User.GetUserByUsername(username)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.UID, user.Username, user.Role, tokenLifetime)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

func (s *UserService) GetUser(id uint) (models.User, error) {
	user, err := s.repos.User.GetUserByID(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.repos.User.ListUsers()
}

func (s *UserService) UpdateUser(id uint, input dto.UpdateUserInput) (models.User, error) {
	user, err := s.repos.User.GetUserByID(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	if input.Email != nil {
		user.Email = input.Email
	}
	if input.Company != nil {
		user.Company = input.Company
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		user.Password = string(hashed)
	}

	err = s.repos.User.SaveUser(&user)
	return user, err
}

func (s *UserService) DeleteUser(id uint) error {
	if _, err := s.repos.User.GetUserByID(id); err != nil {
		return ErrUserNotFound
	}
	return s.repos.User.DeleteUser(id)
}
