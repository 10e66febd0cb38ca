package repository

import (
	"context"

	"festa/internal/domain/model"
	domainrepo "festa/internal/repository"

	"gorm.io/gorm"
)

type userGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

// Create はユーザーを新規作成。nome重複はErrConflict
func (r *userGormRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translateError("users.create", err)
	}
	return nil
}

// nomeでユーザーを1件取得
func (r *userGormRepository) FindByName(ctx context.Context, name string) (*model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("nome = ?", name).
		First(&u).Error
	if err != nil {
		return nil, translateError("users.find_by_name", err)
	}
	return &u, nil
}

// IDでユーザーを1件取得
func (r *userGormRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	if err != nil {
		return nil, translateError("users.find_by_id", err)
	}
	return &u, nil
}
