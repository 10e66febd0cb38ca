package repository

import (
	"context"

	"festa/internal/domain/model"
)

// 商品カタログ（読み取り専用）
type ProductRepository interface {
	// id順
	List(ctx context.Context) ([]model.Product, error)
	// 見つからなければErrNotFound
	FindByID(ctx context.Context, id int64) (model.Product, error)
}
