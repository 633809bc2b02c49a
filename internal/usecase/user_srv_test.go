package usecase

import (
	"context"
	"testing"

	"coffee-shop/internal/dto/request"
	"coffee-shop/internal/loyalty"
	"coffee-shop/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserFixture(t *testing.T) (UserService, *mockUserRepo) {
	t.Helper()

	users := newMockUserRepo()
	config := &utils.Config{
		Loyalty: utils.LoyaltyConfig{
			StartingPoints:   340,
			StartingLifetime: 420,
		},
		Admin: utils.AdminConfig{IDs: []int64{1962824399}},
	}

	return NewUserService(users, loyalty.DefaultTable(), config, zap.NewNop()), users
}

func TestAuthenticateCreatesUser(t *testing.T) {
	service, users := newUserFixture(t)

	resp, err := service.Authenticate(context.Background(), &request.AuthRequest{
		ID:   42,
		Name: "Анна",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "Анна", resp.Name)
	assert.Equal(t, 340, resp.Points)
	assert.Equal(t, 420, resp.LifetimePoints)
	assert.Equal(t, "Бариста-Шеф", resp.LevelName)
	assert.Equal(t, 500, resp.NextLevelPoints)
	assert.False(t, resp.IsAdmin)

	require.NotNil(t, users.users[42])
}

func TestAuthenticateRefreshesProfile(t *testing.T) {
	service, users := newUserFixture(t)

	_, err := service.Authenticate(context.Background(), &request.AuthRequest{ID: 42, Name: "Анна"})
	require.NoError(t, err)

	// Bump the balance behind the service's back
	users.users[42].Points = 999

	avatar := "https://t.me/i/userpic/42.jpg"
	resp, err := service.Authenticate(context.Background(), &request.AuthRequest{
		ID:        42,
		Name:      "Анна К.",
		AvatarURL: &avatar,
	})
	require.NoError(t, err)

	// Profile updated, balances untouched
	assert.Equal(t, "Анна К.", resp.Name)
	require.NotNil(t, resp.AvatarURL)
	assert.Equal(t, avatar, *resp.AvatarURL)
	assert.Equal(t, 999, resp.Points)
}

func TestAuthenticateAdminFlag(t *testing.T) {
	service, _ := newUserFixture(t)

	resp, err := service.Authenticate(context.Background(), &request.AuthRequest{
		ID:   1962824399,
		Name: "Barista",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsAdmin)
}

func TestAuthenticateValidation(t *testing.T) {
	service, _ := newUserFixture(t)

	_, err := service.Authenticate(context.Background(), &request.AuthRequest{Name: "No ID"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	_, err = service.Authenticate(context.Background(), &request.AuthRequest{ID: 42})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestEnsureUserIdempotent(t *testing.T) {
	service, users := newUserFixture(t)

	first, err := service.EnsureUser(context.Background(), 42, "Анна", nil)
	require.NoError(t, err)
	assert.Equal(t, 340, first.Points)

	users.users[42].Points = 10

	again, err := service.EnsureUser(context.Background(), 42, "Other Name", nil)
	require.NoError(t, err)

	// Existing user untouched
	assert.Equal(t, "Анна", again.Name)
	assert.Equal(t, 10, again.Points)
}

func TestGetUserNotFound(t *testing.T) {
	service, _ := newUserFixture(t)

	_, err := service.GetUser(context.Background(), 999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
