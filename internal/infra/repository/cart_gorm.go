package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// active以外＝確定済みの注文。並び順は保存順のまま。
func (r *CartGormRepository) ListPlaced(ctx context.Context) ([]model.Cart, error) {
	var carts []model.Cart

	err := r.db.WithContext(ctx).
		Where("cart_status <> ?", model.CartStatusActive).
		Find(&carts).Error
	if err != nil {
		return []model.Cart{}, err
	}

	return carts, nil
}

func (r *CartGormRepository) FindByID(ctx context.Context, cartID int64) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

func (r *CartGormRepository) Create(ctx context.Context, cart model.Cart) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return 0, err
	}
	return cart.CartID, nil
}
