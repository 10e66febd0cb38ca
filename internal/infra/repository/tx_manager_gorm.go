package repository

import (
	"context"

	repo "festa/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	users     repo.UserRepository
	sessions  repo.SessionRepository
	cartItems repo.CartItemRepository
}

func (r *txReposGorm) Users() repo.UserRepository         { return r.users }
func (r *txReposGorm) Sessions() repo.SessionRepository   { return r.sessions }
func (r *txReposGorm) CartItems() repo.CartItemRepository { return r.cartItems }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

var _ repo.TransactionManager = (*TxManagerGorm)(nil)

// fnがエラーを返せばrollback
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			users:     NewUserGormRepository(tx),
			sessions:  NewSessionGormRepository(tx),
			cartItems: NewCartItemGormRepository(tx),
		}
		return fn(r)
	})
}
