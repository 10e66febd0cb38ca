package usecase_test

import (
	"context"
	"time"

	"festa/internal/domain/model"
	repo "festa/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByName(ctx context.Context, name string) (*model.User, error) {
	args := m.Called(ctx, name)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

// =====================
// Mock: SessionRepository
// =====================

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, s *model.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByID(ctx context.Context, id string) (*model.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*model.Session)
	return s, args.Error(1)
}

func (m *MockSessionRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// Mock: CartItemRepository
// =====================

type MockCartItemRepository struct {
	mock.Mock
}

func (m *MockCartItemRepository) Append(ctx context.Context, sessionID string, productID int64) error {
	args := m.Called(ctx, sessionID, productID)
	return args.Error(0)
}

func (m *MockCartItemRepository) ListBySessionID(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	args := m.Called(ctx, sessionID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *MockCartItemRepository) DeleteBySessionID(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// =====================
// Mock: PartyRepository
// =====================

type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) Create(ctx context.Context, p *model.Party) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartyRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Party, error) {
	args := m.Called(ctx, ownerID)
	list, _ := args.Get(0).([]model.Party)
	return list, args.Error(1)
}

func (m *MockPartyRepository) DeleteByIDAndOwner(ctx context.Context, id int64, ownerID int64) (int64, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// Mock: ProductRepository
// =====================

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]model.Product)
	return list, args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

// =====================
// Mock: SessionTokenCodec
// =====================

type MockTokenCodec struct {
	mock.Mock
}

func (m *MockTokenCodec) Encode(t model.SessionToken) (string, error) {
	args := m.Called(t)
	return args.String(0), args.Error(1)
}

func (m *MockTokenCodec) Decode(raw string) (model.SessionToken, error) {
	args := m.Called(raw)
	t, _ := args.Get(0).(model.SessionToken)
	return t, args.Error(1)
}

// =====================
// Fake: TransactionManager
// =====================

// fnをそのまま呼ぶ。rollbackの確認はrepositoryのテストで行う
type fakeTxManager struct {
	users    repo.UserRepository
	sessions repo.SessionRepository
	items    repo.CartItemRepository
}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(f)
}

func (f *fakeTxManager) Users() repo.UserRepository         { return f.users }
func (f *fakeTxManager) Sessions() repo.SessionRepository   { return f.sessions }
func (f *fakeTxManager) CartItems() repo.CartItemRepository { return f.items }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixedID struct{ id string }

func (g fixedID) NewID() string { return g.id }
