package usecase

import (
	"context"
	"strings"
	"testing"

	"coffee-shop/internal/data/entity"
	"coffee-shop/internal/data/repository"
	"coffee-shop/internal/dto/request"
	"coffee-shop/internal/loyalty"
	"coffee-shop/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOrderFixture(t *testing.T, allowOverdraft bool) (OrderService, *mockUserRepo, *mockOrderRepo) {
	t.Helper()

	users := newMockUserRepo()
	orders := newMockOrderRepo(users)
	repo := &repository.Repository{User: users, Order: orders}

	engine := loyalty.Engine{
		Table:           loyalty.DefaultTable(),
		CashbackPercent: 5,
		AllowOverdraft:  allowOverdraft,
	}

	return NewOrderService(repo, engine, zap.NewNop()), users, orders
}

func seedUser(users *mockUserRepo, id int64, points, lifetime int) {
	users.users[id] = &entity.User{
		ID:             id,
		Name:           "Test User",
		Points:         points,
		LifetimePoints: lifetime,
		LevelName:      loyalty.DefaultTable().LevelFor(lifetime).Name,
	}
}

func TestCreateOrderEarnsPoints(t *testing.T) {
	service, users, orders := newOrderFixture(t, true)
	seedUser(users, 42, 340, 420)

	resp, err := service.CreateOrder(context.Background(), &request.CreateOrderRequest{
		UserID:       42,
		ItemsSummary: "Капучино x1, Круассан x1",
		TotalPrice:   1000,
	})
	require.NoError(t, err)

	assert.Equal(t, 50, resp.PointsEarned)
	assert.Equal(t, 0, resp.PointsUsed)
	assert.True(t, strings.HasPrefix(resp.Number, utils.OrderNumberPrefix))

	user := users.users[42]
	assert.Equal(t, 390, user.Points)
	assert.Equal(t, 470, user.LifetimePoints)
	assert.Equal(t, "Бариста-Шеф", user.LevelName)

	require.Len(t, orders.orders, 1)
	assert.Equal(t, 50, orders.orders[0].PointsEarned)
}

func TestCreateOrderRedeemsPoints(t *testing.T) {
	service, users, _ := newOrderFixture(t, true)
	seedUser(users, 42, 340, 420)

	resp, err := service.CreateOrder(context.Background(), &request.CreateOrderRequest{
		UserID:       42,
		ItemsSummary: "Латте x2",
		TotalPrice:   1000,
		PointsUsed:   100,
	})
	require.NoError(t, err)

	// Redemption forfeits cashback for the whole order
	assert.Equal(t, 0, resp.PointsEarned)

	user := users.users[42]
	assert.Equal(t, 240, user.Points)
	assert.Equal(t, 420, user.LifetimePoints)
}

func TestCreateOrderPromotesLevel(t *testing.T) {
	service, users, _ := newOrderFixture(t, true)
	seedUser(users, 42, 100, 480)

	_, err := service.CreateOrder(context.Background(), &request.CreateOrderRequest{
		UserID:       42,
		ItemsSummary: "Раф x1",
		TotalPrice:   1000,
	})
	require.NoError(t, err)

	user := users.users[42]
	assert.Equal(t, 530, user.LifetimePoints)
	assert.Equal(t, "Магистр Эспрессо", user.LevelName)
}

func TestCreateOrderInsufficientPoints(t *testing.T) {
	service, users, orders := newOrderFixture(t, false)
	seedUser(users, 42, 50, 200)

	_, err := service.CreateOrder(context.Background(), &request.CreateOrderRequest{
		UserID:       42,
		ItemsSummary: "Эспрессо x1",
		TotalPrice:   300,
		PointsUsed:   80,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, loyalty.ErrInsufficientPoints)

	// Nothing changed: no order, untouched balance
	assert.Empty(t, orders.orders)
	assert.Equal(t, 50, users.users[42].Points)
}

func TestCreateOrderUnknownUser(t *testing.T) {
	service, _, _ := newOrderFixture(t, true)

	_, err := service.CreateOrder(context.Background(), &request.CreateOrderRequest{
		UserID:       999,
		ItemsSummary: "Капучино x1",
		TotalPrice:   300,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateOrderValidation(t *testing.T) {
	service, _, _ := newOrderFixture(t, true)

	tests := []struct {
		name string
		req  request.CreateOrderRequest
	}{
		{"missing user", request.CreateOrderRequest{ItemsSummary: "x", TotalPrice: 100}},
		{"missing items", request.CreateOrderRequest{UserID: 42, TotalPrice: 100}},
		{"zero total", request.CreateOrderRequest{UserID: 42, ItemsSummary: "x"}},
		{"negative points used", request.CreateOrderRequest{UserID: 42, ItemsSummary: "x", TotalPrice: 100, PointsUsed: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateOrder(context.Background(), &tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestGetOrder(t *testing.T) {
	service, users, _ := newOrderFixture(t, true)
	seedUser(users, 42, 340, 420)

	created, err := service.CreateOrder(context.Background(), &request.CreateOrderRequest{
		UserID:       42,
		ItemsSummary: "Капучино x1",
		TotalPrice:   350,
	})
	require.NoError(t, err)

	found, err := service.GetOrder(context.Background(), created.Number)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Капучино x1", found.ItemsSummary)
}

func TestGetOrderNotFound(t *testing.T) {
	service, _, _ := newOrderFixture(t, true)

	_, err := service.GetOrder(context.Background(), "ORD-0000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetUserOrders(t *testing.T) {
	service, users, _ := newOrderFixture(t, true)
	seedUser(users, 42, 1000, 0)

	for i := 0; i < 3; i++ {
		_, err := service.CreateOrder(context.Background(), &request.CreateOrderRequest{
			UserID:       42,
			ItemsSummary: "Латте x1",
			TotalPrice:   300,
		})
		require.NoError(t, err)
	}

	orders, err := service.GetUserOrders(context.Background(), 42, 2)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestGetUserOrdersUnknownUser(t *testing.T) {
	service, _, _ := newOrderFixture(t, true)

	_, err := service.GetUserOrders(context.Background(), 999, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListRecent(t *testing.T) {
	service, users, _ := newOrderFixture(t, true)
	seedUser(users, 1, 0, 0)
	seedUser(users, 2, 0, 0)

	for _, id := range []int64{1, 2, 1} {
		_, err := service.CreateOrder(context.Background(), &request.CreateOrderRequest{
			UserID:       id,
			ItemsSummary: "Эспрессо x1",
			TotalPrice:   200,
		})
		require.NoError(t, err)
	}

	orders, err := service.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	// Newest first
	assert.Equal(t, int64(1), orders[0].UserID)
	assert.Equal(t, int64(2), orders[1].UserID)
}
