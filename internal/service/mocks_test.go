package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/bistro-service/internal/domain"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockUserRepo) UpdateRole(ctx context.Context, id string, role domain.Role) (int64, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockCartRepo struct{ mock.Mock }

func (m *MockCartRepo) ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.([]domain.CartItem), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCartRepo) Add(ctx context.Context, item *domain.CartItem) error {
	return m.Called(ctx, item).Error(0)
}
func (m *MockCartRepo) Remove(ctx context.Context, id, email string) (int64, error) {
	args := m.Called(ctx, id, email)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCartRepo) RemoveMany(ctx context.Context, ids []string, email string) (int64, error) {
	args := m.Called(ctx, ids, email)
	return args.Get(0).(int64), args.Error(1)
}

type MockPaymentRepo struct{ mock.Mock }

func (m *MockPaymentRepo) Settle(ctx context.Context, payment *domain.Payment) (int64, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPaymentRepo) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.([]domain.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

type fakeGateway struct {
	secret     string
	err        error
	lastAmount int64
}

func (g *fakeGateway) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	g.lastAmount = amountCents
	if g.err != nil {
		return "", g.err
	}
	return g.secret, nil
}
