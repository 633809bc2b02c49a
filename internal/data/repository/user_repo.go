package repository

import (
	"context"
	"fmt"

	"coffee-shop/internal/data/entity"
	"coffee-shop/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	UpdateProfile(ctx context.Context, id int64, name string, avatarURL *string) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, avatar_url, points, lifetime_points,
		                   level_name, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.AvatarURL,
		user.Points,
		user.LifetimePoints,
		user.LevelName,
		user.IsAdmin,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.Int64("user_id", user.ID),
			zap.String("name", user.Name),
		)
		return fmt.Errorf("create user %d: %w", user.ID, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT id, name, avatar_url, points, lifetime_points,
		       level_name, is_admin, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user entity.User
	// QueryRow returns at most one row
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.AvatarURL,
		&user.Points,
		&user.LifetimePoints,
		&user.LevelName,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}

	return &user, nil
}

// UpdateProfile refreshes name and avatar on re-authentication. The
// balance fields are only touched by order settlement.
func (ur *userRepository) UpdateProfile(ctx context.Context, id int64, name string, avatarURL *string) error {
	query := `
		UPDATE users
		SET name = $2, avatar_url = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query, id, name, avatarURL)
	if err != nil {
		ur.log.Error("Failed to update user profile",
			zap.Error(err),
			zap.Int64("user_id", id),
		)
		return fmt.Errorf("update user profile %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", id)
	}

	return nil
}
