package repository

import (
	"context"

	"festa/internal/domain/model"
)

// festasの永続化。必ずuser_idで絞る。
type PartyRepository interface {
	Create(ctx context.Context, p *model.Party) error
	// id順
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Party, error)
	// id と user_id の両方が一致した行だけ削除。削除件数を返す
	DeleteByIDAndOwner(ctx context.Context, id int64, ownerID int64) (int64, error)
}
