package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/mzhuravlev/shop_api/internal/models"
	"github.com/mzhuravlev/shop_api/internal/repo"
	"github.com/mzhuravlev/shop_api/internal/transport"
	"gorm.io/gorm"
)

type ProductService struct {
	Repo *repo.GormRepo
}

func (s *ProductService) CreateProduct(ctx context.Context, name, description string, price float64) (*models.Product, error) {
	if name == "" || description == "" {
		return nil, fmt.Errorf("name and description are required: %w", ErrValidation)
	}
	if price <= 0 {
		return nil, fmt.Errorf("price must be greater than 0: %w", ErrValidation)
	}

	if _, err := s.Repo.ProductByName(ctx, name); err == nil {
		return nil, fmt.Errorf("product with this name already exists: %w", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	product := &models.Product{Name: name, Description: description, Price: price}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

// GetProductWithRating returns the product together with its aggregated
// rating stats: mean score rounded to 2 decimals (0.0 without ratings) and
// the number of ratings.
func (s *ProductService) GetProductWithRating(ctx context.Context, id uint) (*transport.ProductWithRating, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product not found: %w", ErrNotFound)
		}
		return nil, err
	}

	ratings, err := s.Repo.GetProductRatings(ctx, id)
	if err != nil {
		return nil, err
	}

	avg := 0.0
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Score
		}
		avg = math.Round(float64(sum)/float64(len(ratings))*100) / 100
	}

	return &transport.ProductWithRating{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		AverageRating: avg,
		TotalRatings:  len(ratings),
	}, nil
}

// PatchProduct applies only the fields set in the request. Price keeps its
// range check; name uniqueness is not re-checked on update.
func (s *ProductService) PatchProduct(ctx context.Context, id uint, req transport.PatchProductRequest) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product not found: %w", ErrNotFound)
		}
		return nil, err
	}

	if req.Price != nil && *req.Price <= 0 {
		return nil, fmt.Errorf("price must be greater than 0: %w", ErrValidation)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	err := s.Repo.DeleteProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("product not found: %w", ErrNotFound)
	}
	return err
}
