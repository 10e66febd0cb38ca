package usecase

import (
	"errors"
	"fmt"

	"festa/internal/repository"
)

var (
	// 入力不足（空欄など）
	ErrValidation = errors.New("validation error")
	// 名前またはパスワードが違う
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ログインしていない
	ErrUnauthorized = errors.New("unauthorized")
	// 競合（nome重複）
	ErrConflict = errors.New("conflict")
	// DBの失敗
	ErrStorage = errors.New("storage failure")
)

// repositoryのエラーをusecaseのエラーへ
func mapRepoError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%s: %w", op, ErrConflict)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
	}
}
