package repository

import (
	"context"

	"festa/internal/domain/model"
)

// セッション単位のカート明細
type CartItemRepository interface {
	// 末尾に1件追加（1文でINSERT）
	Append(ctx context.Context, sessionID string, productID int64) error
	// 追加順（id順）
	ListBySessionID(ctx context.Context, sessionID string) ([]model.CartItem, error)
	// セッションの明細を全削除
	DeleteBySessionID(ctx context.Context, sessionID string) error
}
