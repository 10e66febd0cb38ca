package usecase

import (
	"context"

	"festa/internal/domain/model"
	repo "festa/internal/repository"
)

type ProductUsecase struct {
	products repo.ProductRepository
}

func NewProductUsecase(products repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

// 商品一覧（id順）
func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	list, err := u.products.List(ctx)
	if err != nil {
		return nil, mapRepoError("product list", err)
	}
	return list, nil
}
