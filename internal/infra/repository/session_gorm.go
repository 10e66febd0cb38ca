package repository

import (
	"context"
	"time"

	"festa/internal/domain/model"
	repo "festa/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sessionGormRepository struct {
	db *gorm.DB
}

// DI
func NewSessionGormRepository(db *gorm.DB) repo.SessionRepository {
	return &sessionGormRepository{db: db}
}

func (r *sessionGormRepository) Create(ctx context.Context, s *model.Session) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(s).Error
	return translateError("sessions.create", err)
}

func (r *sessionGormRepository) FindByID(ctx context.Context, id string) (*model.Session, error) {
	var s model.Session
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, translateError("sessions.find_by_id", err)
	}
	return &s, nil
}

// 無いIDでもエラーにしない（ログアウトの二重実行など）
func (r *sessionGormRepository) DeleteByID(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Session{}).Error
	return translateError("sessions.delete", err)
}

// expires_at <= now の行を消す。cart_itemsはFKのCASCADEで消える
func (r *sessionGormRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", now.UTC()).
		Delete(&model.Session{})
	if res.Error != nil {
		return 0, translateError("sessions.delete_expired", res.Error)
	}
	return res.RowsAffected, nil
}
