package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mzhuravlev/shop_api/internal/models"
	"github.com/mzhuravlev/shop_api/internal/repo"
	"gorm.io/gorm"
)

type RatingService struct {
	Repo *repo.GormRepo
}

func (s *RatingService) CreateRating(ctx context.Context, userID, productID uint, score int, review string) (*models.Rating, error) {
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("score must be between 1 and 5: %w", ErrValidation)
	}

	if _, err := s.Repo.GetUser(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product not found: %w", ErrNotFound)
		}
		return nil, err
	}

	// A user rates a product at most once. A repeat attempt is rejected,
	// never merged into the existing rating.
	if _, err := s.Repo.RatingByUserAndProduct(ctx, userID, productID); err == nil {
		return nil, fmt.Errorf("user has already rated this product: %w", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rating := &models.Rating{UserID: userID, ProductID: productID, Score: score, Review: review}
	if err := s.Repo.CreateRating(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *RatingService) GetProductRatings(ctx context.Context, productID uint) ([]models.Rating, error) {
	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product not found: %w", ErrNotFound)
		}
		return nil, err
	}
	return s.Repo.GetProductRatings(ctx, productID)
}

func (s *RatingService) GetUserRatings(ctx context.Context, userID uint) ([]models.Rating, error) {
	if _, err := s.Repo.GetUser(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", ErrNotFound)
		}
		return nil, err
	}
	return s.Repo.GetUserRatings(ctx, userID)
}

func (s *RatingService) DeleteRating(ctx context.Context, id uint) error {
	err := s.Repo.DeleteRating(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("rating not found: %w", ErrNotFound)
	}
	return err
}
