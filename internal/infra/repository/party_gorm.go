package repository

import (
	"context"

	"festa/internal/domain/model"
	repo "festa/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type partyGormRepository struct {
	db *gorm.DB
}

// DI
func NewPartyGormRepository(db *gorm.DB) repo.PartyRepository {
	return &partyGormRepository{db: db}
}

func (r *partyGormRepository) Create(ctx context.Context, p *model.Party) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(p).Error
	return translateError("festas.create", err)
}

// 持ち主のfestaだけをid順で返す
func (r *partyGormRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Party, error) {
	var list []model.Party
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id asc").
		Find(&list).Error; err != nil {
		return nil, translateError("festas.list", err)
	}
	return list, nil
}

// idとuser_idの両方で絞るので、他人のfestaは0件になる
func (r *partyGormRepository) DeleteByIDAndOwner(ctx context.Context, id int64, ownerID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Party{})
	if res.Error != nil {
		return 0, translateError("festas.delete", res.Error)
	}
	return res.RowsAffected, nil
}
