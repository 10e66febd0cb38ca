package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"festa/internal/domain/model"
	repo "festa/internal/repository"
	"festa/internal/validator"
)

type CreatePartyInput struct {
	Name     string
	Date     string
	Location string
}

// PartyUsecase は festas の一覧/作成/削除。
// どの操作も持ち主のIDで絞る。
type PartyUsecase struct {
	parties repo.PartyRepository
}

func NewPartyUsecase(parties repo.PartyRepository) *PartyUsecase {
	return &PartyUsecase{parties: parties}
}

func (u *PartyUsecase) List(ctx context.Context, ownerID int64) ([]model.Party, error) {
	if ownerID <= 0 {
		return nil, ErrUnauthorized
	}
	list, err := u.parties.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, mapRepoError("party list", err)
	}
	return list, nil
}

// 空欄（空白のみ含む）や長すぎる項目があればErrValidation
func (u *PartyUsecase) Create(ctx context.Context, ownerID int64, in CreatePartyInput) (int64, error) {
	if ownerID <= 0 {
		return 0, ErrUnauthorized
	}

	p := &model.Party{
		Name:     strings.TrimSpace(in.Name),
		Date:     strings.TrimSpace(in.Date),
		Location: strings.TrimSpace(in.Location),
		UserID:   ownerID,
	}
	if err := validator.Check(
		validator.Field{Value: p.Name, MaxLen: validator.MaxNameLen},
		validator.Field{Value: p.Date, MaxLen: validator.MaxDateLen},
		validator.Field{Value: p.Location, MaxLen: validator.MaxLocationLen},
	); err != nil {
		return 0, fmt.Errorf("party create: %w: %w", ErrValidation, err)
	}

	if err := u.parties.Create(ctx, p); err != nil {
		return 0, mapRepoError("party create", err)
	}
	return p.ID, nil
}

// 他人のfestaや存在しないIDでも成功扱い（0件削除）
func (u *PartyUsecase) Remove(ctx context.Context, ownerID int64, partyID int64) error {
	if ownerID <= 0 {
		return ErrUnauthorized
	}

	n, err := u.parties.DeleteByIDAndOwner(ctx, partyID, ownerID)
	if err != nil {
		return mapRepoError("party remove", err)
	}
	slog.DebugContext(ctx, "party remove", "party_id", partyID, "user_id", ownerID, "rows", n)
	return nil
}
