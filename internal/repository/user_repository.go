package repository

import (
	"context"

	"festa/internal/domain/model"
)

// ユーザーの保存・取得を約束
type UserRepository interface {
	// 新規作成。nome重複はErrConflict
	Create(ctx context.Context, user *model.User) error
	// 見つからなければErrNotFound
	FindByID(ctx context.Context, id int64) (*model.User, error)
	// 見つからなければErrNotFound
	FindByName(ctx context.Context, name string) (*model.User, error)
}
