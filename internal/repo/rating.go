package repo

import (
	"context"

	"github.com/mzhuravlev/shop_api/internal/models"
	"gorm.io/gorm"
)

func (r *GormRepo) CreateRating(ctx context.Context, rating *models.Rating) error {
	return r.DB.WithContext(ctx).Create(rating).Error
}

func (r *GormRepo) RatingByUserAndProduct(ctx context.Context, userID, productID uint) (*models.Rating, error) {
	var rating models.Rating
	if err := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *GormRepo) GetProductRatings(ctx context.Context, productID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.DB.WithContext(ctx).Where("product_id = ?", productID).Order("id ASC").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *GormRepo) GetUserRatings(ctx context.Context, userID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *GormRepo) DeleteRating(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Rating{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
