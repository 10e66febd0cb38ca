package usecase

import (
	"context"
	"errors"

	"festa/internal/domain/model"
	repo "festa/internal/repository"
)

// CartUsecase はセッション単位のカート。
// 明細は商品IDの並びで、同じ商品を2回追加すると2行になる。
type CartUsecase struct {
	items    repo.CartItemRepository
	products repo.ProductRepository
}

func NewCartUsecase(items repo.CartItemRepository, products repo.ProductRepository) *CartUsecase {
	return &CartUsecase{items: items, products: products}
}

// Add はカートの末尾に1件追加する。
func (u *CartUsecase) Add(ctx context.Context, sessionID string, productID int64) error {
	if sessionID == "" {
		return ErrUnauthorized
	}
	if productID <= 0 {
		return ErrValidation
	}
	return mapRepoError("cart add", u.items.Append(ctx, sessionID, productID))
}

// Clear はカートを空にする。
func (u *CartUsecase) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrUnauthorized
	}
	return mapRepoError("cart clear", u.items.DeleteBySessionID(ctx, sessionID))
}

// List は追加順の明細をカタログで解決して返す。
// カタログに無い商品IDは黙って落とす。
func (u *CartUsecase) List(ctx context.Context, sessionID string) (model.Cart, error) {
	if sessionID == "" {
		return model.Cart{}, ErrUnauthorized
	}

	items, err := u.items.ListBySessionID(ctx, sessionID)
	if err != nil {
		return model.Cart{}, mapRepoError("cart list", err)
	}

	cart := model.Cart{Lines: make([]model.CartLine, 0, len(items))}
	for _, it := range items {
		p, err := u.products.FindByID(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				continue
			}
			return model.Cart{}, mapRepoError("cart list", err)
		}
		cart.Lines = append(cart.Lines, model.CartLine{
			ProductID:  p.ID,
			Name:       p.Name,
			PriceCents: p.PriceCents,
		})
		cart.TotalCents += p.PriceCents
	}
	return cart, nil
}
