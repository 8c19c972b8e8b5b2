package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mzhuravlev/shop_api/internal/models"
	"github.com/mzhuravlev/shop_api/internal/repo"
	"gorm.io/gorm"
)

type CartService struct {
	Repo *repo.GormRepo
}

// AddToCart inserts a cart row for the (user, product) pair or, when one
// already exists, increments its quantity by the given amount.
func (s *CartService) AddToCart(ctx context.Context, userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be greater than 0: %w", ErrValidation)
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

	item := &models.CartItem{UserID: userID, ProductID: productID, Quantity: uint(quantity)}
	if err := s.Repo.AddToCart(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) GetUserCart(ctx context.Context, userID uint) ([]models.CartItem, error) {
	if _, err := s.Repo.GetUser(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", ErrNotFound)
		}
		return nil, err
	}
	return s.Repo.GetUserCart(ctx, userID)
}

// UpdateCartItem overwrites the quantity, it does not add to it.
func (s *CartService) UpdateCartItem(ctx context.Context, cartItemID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be greater than 0: %w", ErrValidation)
	}

	item, err := s.Repo.GetCartItem(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item not found: %w", ErrNotFound)
		}
		return nil, err
	}

	item.Quantity = uint(quantity)
	if err := s.Repo.SaveCartItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, cartItemID uint) error {
	err := s.Repo.DeleteCartItem(ctx, cartItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("cart item not found: %w", ErrNotFound)
	}
	return err
}

// ClearCart deletes every cart row for the user. An unknown user or an
// already empty cart is not an error.
func (s *CartService) ClearCart(ctx context.Context, userID uint) error {
	return s.Repo.DeleteAllFromCart(ctx, userID)
}
