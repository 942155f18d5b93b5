package service

import (
	"errors"
	"fmt"

	"pharma-dashboard/internal/model"
	"pharma-dashboard/internal/repository"
	"pharma-dashboard/pkg/logger"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type UserService interface {
	Register(req *model.UserInput) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	VerifyPassword(username, password string) (*model.User, error)
	// EnsureUser creates the account unless the username is already taken.
	EnsureUser(req *model.UserInput) (*model.User, bool, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(req *model.UserInput) (*model.User, error) {
	if err := validateInput("user", req); err != nil {
		return nil, err
	}

	user := &model.User{Username: req.Username}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, checkDuplicate(err, "user", "username", "create user")
	}

	logger.Log.Info().Str("username", user.Username).Msg("user registered")
	return user, nil
}

func (s *userService) FindByUsername(username string) (*model.User, error) {
	return s.userRepo.FindByUsername(username)
}

func (s *userService) VerifyPassword(username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) EnsureUser(req *model.UserInput) (*model.User, bool, error) {
	existing, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	user, err := s.Register(req)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}
