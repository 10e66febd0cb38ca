package repository

import (
	"context"
	"time"

	"festa/internal/domain/model"
)

// ログインセッションの保存・取得・削除
type SessionRepository interface {
	Create(ctx context.Context, s *model.Session) error
	// 見つからなければErrNotFound
	FindByID(ctx context.Context, id string) (*model.Session, error)
	// 0件でもエラーにしない
	DeleteByID(ctx context.Context, id string) error
	// 期限切れを削除して件数を返す
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
