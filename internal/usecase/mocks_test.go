package usecase

import (
	"context"
	"fmt"

	"coffee-shop/internal/data/entity"
)

// mockUserRepo is an in-memory UserRepository for service tests.
type mockUserRepo struct {
	users     map[int64]*entity.User
	createErr error
	findErr   error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*entity.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, id int64, name string, avatarURL *string) error {
	user, ok := m.users[id]
	if !ok {
		return fmt.Errorf("user %d not found", id)
	}
	user.Name = name
	user.AvatarURL = avatarURL
	return nil
}

// mockOrderRepo holds one user whose balances the settlement mutates,
// mirroring the transactional repository.
type mockOrderRepo struct {
	users  *mockUserRepo
	orders []*entity.Order
}

func newMockOrderRepo(users *mockUserRepo) *mockOrderRepo {
	return &mockOrderRepo{users: users}
}

func (m *mockOrderRepo) CreateSettled(ctx context.Context, order *entity.Order, apply func(user *entity.User) error) (*entity.User, error) {
	user, ok := m.users.users[order.UserID]
	if !ok {
		return nil, fmt.Errorf("user %d not found", order.UserID)
	}

	updated := *user
	if err := apply(&updated); err != nil {
		return nil, err
	}

	m.users.users[order.UserID] = &updated
	m.orders = append(m.orders, order)
	return &updated, nil
}

func (m *mockOrderRepo) FindByNumber(ctx context.Context, number string) (*entity.Order, error) {
	for _, order := range m.orders {
		if order.Number == number {
			return order, nil
		}
	}
	return nil, nil
}

func (m *mockOrderRepo) FindByUserID(ctx context.Context, userID int64, limit int) ([]*entity.Order, error) {
	var out []*entity.Order
	for i := len(m.orders) - 1; i >= 0 && len(out) < limit; i-- {
		if m.orders[i].UserID == userID {
			out = append(out, m.orders[i])
		}
	}
	return out, nil
}

func (m *mockOrderRepo) FindRecent(ctx context.Context, limit int) ([]*entity.Order, error) {
	var out []*entity.Order
	for i := len(m.orders) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.orders[i])
	}
	return out, nil
}
