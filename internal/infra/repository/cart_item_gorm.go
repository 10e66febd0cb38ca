package repository

import (
	"context"

	"festa/internal/domain/model"
	repo "festa/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

var _ repo.CartItemRepository = (*CartItemGormRepository)(nil)

// 1文のINSERTだけなので、同じセッションから同時に追加しても両方残る
func (r *CartItemGormRepository) Append(ctx context.Context, sessionID string, productID int64) error {
	item := model.CartItem{
		SessionID: sessionID,
		ProductID: productID,
	}
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&item).Error
	return translateError("cart_items.append", err)
}

// 追加順
func (r *CartItemGormRepository) ListBySessionID(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	var items []model.CartItem

	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.CartItem{}, translateError("cart_items.list", err)
	}
	return items, nil
}

// セッションの明細を全削除
func (r *CartItemGormRepository) DeleteBySessionID(ctx context.Context, sessionID string) error {
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&model.CartItem{}).Error
	return translateError("cart_items.clear", err)
}
