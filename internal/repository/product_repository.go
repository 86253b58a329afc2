package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 商品カタログの読み取りだけを約束。書き込みは外部システムの仕事。
type ProductRepository interface {
	FindByID(ctx context.Context, productID int64) (model.Product, error)

	//見つからなかったIDは結果から抜けるだけでエラーにはしない。
	FindByIDs(ctx context.Context, productIDs []int64) ([]model.Product, error)
}
