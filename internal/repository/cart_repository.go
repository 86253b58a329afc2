package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	//cart_statusがactive以外のものを保存順で返す。
	ListPlaced(ctx context.Context) ([]model.Cart, error)

	FindByID(ctx context.Context, cartID int64) (model.Cart, error)

	//新しいcart_idを返す。
	Create(ctx context.Context, cart model.Cart) (int64, error)
}
