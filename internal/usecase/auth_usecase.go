package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"festa/internal/domain/model"
	"festa/internal/repository"
	"festa/internal/validator"
)

// セッショントークン（クッキーの値）を作る/検証する約束
type SessionTokenCodec interface {
	Encode(t model.SessionToken) (string, error)
	Decode(raw string) (model.SessionToken, error)
}

type RegisterInput struct {
	Name     string
	Password string
}

type LoginInput struct {
	Name     string
	Password string
}

// handlerがCookieに詰めるために必要な値
type LoginResult struct {
	User      *model.User
	SessionID string
	Token     string
	ExpiresAt time.Time
}

type AuthUsecase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	tx       repository.TransactionManager
	hasher   PasswordHasher
	codec    SessionTokenCodec
	idGen    IDGenerator
	clock    Clock
	ttl      time.Duration

	dummyOnce sync.Once
	dummyHash string
}

// DI
func NewAuthUsecase(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	tx repository.TransactionManager,
	hasher PasswordHasher,
	codec SessionTokenCodec,
	idGen IDGenerator,
	clock Clock,
	ttl time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		users:    users,
		sessions: sessions,
		tx:       tx,
		hasher:   hasher,
		codec:    codec,
		idGen:    idGen,
		clock:    clock,
		ttl:      ttl,
	}
}

// 会員登録してそのままログインする。
// user作成とsession作成は同じトランザクションなので、重複時は何も残らない。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (LoginResult, error) {
	name := strings.TrimSpace(in.Name)
	if err := validator.Check(validator.Field{Value: name, MaxLen: validator.MaxNameLen}); err != nil {
		return LoginResult{}, fmt.Errorf("register: %w: %w", ErrValidation, err)
	}
	// パスワードはtrimしない（空白だけでも有効）
	if in.Password == "" {
		return LoginResult{}, fmt.Errorf("register: %w: %w", ErrValidation, validator.ErrBlank)
	}
	if len(in.Password) > validator.MaxPasswordBytes {
		return LoginResult{}, fmt.Errorf("register: %w: %w", ErrValidation, validator.ErrTooLong)
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return LoginResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{Name: name, PasswordHash: hashed}
	var res LoginResult

	err = u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		if err := r.Users().Create(ctx, user); err != nil {
			return mapRepoError("register", err)
		}
		var err error
		res, err = u.openSession(ctx, r.Sessions(), user)
		return err
	})
	if err != nil {
		return LoginResult{}, err
	}
	return res, nil
}

// 名前とパスワードの照合。
// 存在しない名前でもダミーハッシュと比較して、時間差で判別できないようにする。
func (u *AuthUsecase) Authenticate(ctx context.Context, name string, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := u.users.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			u.verifyDummy(password)
			return nil, ErrInvalidCredentials
		}
		return nil, mapRepoError("authenticate", err)
	}

	var subject model.Authenticatable = user
	if !u.hasher.Verify(password, subject.HashedPassword()) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	user, err := u.Authenticate(ctx, in.Name, in.Password)
	if err != nil {
		return LoginResult{}, err
	}
	return u.openSession(ctx, u.sessions, user)
}

// カート明細とセッションを同じトランザクションで消す。
// 既に無いセッションでも成功扱い。
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrUnauthorized
	}
	return u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		if err := r.CartItems().DeleteBySessionID(ctx, sessionID); err != nil {
			return mapRepoError("logout", err)
		}
		if err := r.Sessions().DeleteByID(ctx, sessionID); err != nil {
			return mapRepoError("logout", err)
		}
		return nil
	})
}

// クッキーの値からログイン主体を復元する。
// トークン不正・セッション無し・期限切れ・ユーザー無しはすべてErrUnauthorized。
func (u *AuthUsecase) Resolve(ctx context.Context, raw string) (*model.Principal, error) {
	tok, err := u.codec.Decode(raw)
	if err != nil {
		return nil, ErrUnauthorized
	}

	s, err := u.sessions.FindByID(ctx, tok.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, mapRepoError("resolve session", err)
	}
	if s.Expired(u.clock.Now()) || s.UserID != tok.UserID {
		return nil, ErrUnauthorized
	}

	user, err := u.users.FindByID(ctx, s.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, mapRepoError("resolve user", err)
	}

	return &model.Principal{User: user, SessionID: s.ID}, nil
}

// 期限切れセッションを削除する（カート明細はCASCADE）
func (u *AuthUsecase) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := u.sessions.DeleteExpired(ctx, u.clock.Now())
	if err != nil {
		return 0, mapRepoError("purge sessions", err)
	}
	if n > 0 {
		slog.InfoContext(ctx, "expired sessions purged", "count", n)
	}
	return n, nil
}

func (u *AuthUsecase) openSession(ctx context.Context, sessions repository.SessionRepository, user *model.User) (LoginResult, error) {
	now := u.clock.Now()
	s := &model.Session{
		ID:        u.idGen.NewID(),
		UserID:    user.UserID(),
		ExpiresAt: now.Add(u.ttl),
	}
	if err := sessions.Create(ctx, s); err != nil {
		return LoginResult{}, mapRepoError("create session", err)
	}

	token, err := u.codec.Encode(model.SessionToken{
		SessionID: s.ID,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
	})
	if err != nil {
		return LoginResult{}, fmt.Errorf("encode session token: %w", err)
	}

	return LoginResult{
		User:      user,
		SessionID: s.ID,
		Token:     token,
		ExpiresAt: s.ExpiresAt,
	}, nil
}

func (u *AuthUsecase) verifyDummy(password string) {
	u.dummyOnce.Do(func() {
		h, err := newDummyHash(u.hasher)
		if err != nil {
			slog.Warn("dummy hash unavailable", "err", err)
			return
		}
		u.dummyHash = h
	})
	if u.dummyHash != "" {
		_ = u.hasher.Verify(password, u.dummyHash)
	}
}
