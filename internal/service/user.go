package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/mzhuravlev/shop_api/internal/models"
	"github.com/mzhuravlev/shop_api/internal/repo"
	"github.com/mzhuravlev/shop_api/internal/transport"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) CreateUser(ctx context.Context, username, email string, balance float64) (*models.User, error) {
	if username == "" || email == "" {
		return nil, fmt.Errorf("username and email are required: %w", ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("invalid email format: %w", ErrValidation)
	}
	if balance < 0 {
		return nil, fmt.Errorf("balance cannot be negative: %w", ErrValidation)
	}

	if _, err := s.Repo.UserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{Username: username, Email: email, Balance: balance}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user not found: %w", ErrNotFound)
	}
	return user, err
}

func (s *UserService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetUsers(ctx)
}

// PatchUser applies only the fields set in the request. Email format and
// uniqueness are not re-checked on update, matching create-only validation.
func (s *UserService) PatchUser(ctx context.Context, id uint, req transport.PatchUserRequest) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", ErrNotFound)
		}
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Balance != nil {
		user.Balance = *req.Balance
	}

	if err := s.Repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	err := s.Repo.DeleteUser(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("user not found: %w", ErrNotFound)
	}
	return err
}
