package repository

import (
	"context"
	"fmt"

	"festa/internal/domain/model"
	repo "festa/internal/repository"
)

// 固定の商品カタログ。価格はセント単位
var defaultProducts = []model.Product{
	{ID: 1, Name: "Produto 1", PriceCents: 1099},
	{ID: 2, Name: "Produto 2", PriceCents: 2050},
	{ID: 3, Name: "Produto 3", PriceCents: 1575},
}

type StaticProductCatalog struct {
	products []model.Product
	byID     map[int64]model.Product
}

// DI
func NewStaticProductCatalog() *StaticProductCatalog {
	return newStaticProductCatalog(defaultProducts)
}

func newStaticProductCatalog(products []model.Product) *StaticProductCatalog {
	byID := make(map[int64]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &StaticProductCatalog{products: products, byID: byID}
}

var _ repo.ProductRepository = (*StaticProductCatalog)(nil)

// コピーを返す（呼び出し側で書き換えられないように）
func (c *StaticProductCatalog) List(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *StaticProductCatalog) FindByID(ctx context.Context, id int64) (model.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return model.Product{}, fmt.Errorf("products.find_by_id %d: %w", id, repo.ErrNotFound)
	}
	return p, nil
}
