package repository

import (
	"context"
	"fmt"

	"coffee-shop/internal/data/entity"
	"coffee-shop/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	// CreateSettled runs the whole settlement in one transaction: it
	// locks the user row, lets apply mutate the balances and fill in the
	// earned points, then writes user and order together. Either both
	// rows land or neither does. Returns the user as persisted.
	CreateSettled(ctx context.Context, order *entity.Order, apply func(user *entity.User) error) (*entity.User, error)

	FindByNumber(ctx context.Context, number string) (*entity.Order, error)
	FindByUserID(ctx context.Context, userID int64, limit int) ([]*entity.Order, error)

	// FindRecent returns the newest orders joined with the owner's name,
	// newest first. This is the notification bridge's poll query.
	FindRecent(ctx context.Context, limit int) ([]*entity.Order, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) CreateSettled(ctx context.Context, order *entity.Order, apply func(user *entity.User) error) (*entity.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin settlement transaction", zap.Error(err))
		return nil, fmt.Errorf("begin settlement: %w", err)
	}
	defer tx.Rollback(ctx)

	// FOR UPDATE serializes concurrent orders from the same user, so the
	// read-compute-write below cannot lose an update.
	var user entity.User
	err = tx.QueryRow(ctx, `
		SELECT id, name, avatar_url, points, lifetime_points,
		       level_name, is_admin, created_at, updated_at
		FROM users
		WHERE id = $1
		FOR UPDATE
	`, order.UserID).Scan(
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
		return nil, fmt.Errorf("user %d not found", order.UserID)
	}
	if err != nil {
		r.log.Error("Failed to lock user for settlement",
			zap.Error(err),
			zap.Int64("user_id", order.UserID),
		)
		return nil, fmt.Errorf("lock user %d: %w", order.UserID, err)
	}

	if err := apply(&user); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE users
		SET points = $2, lifetime_points = $3, level_name = $4, updated_at = NOW()
		WHERE id = $1
	`, user.ID, user.Points, user.LifetimePoints, user.LevelName)
	if err != nil {
		r.log.Error("Failed to update user balances",
			zap.Error(err),
			zap.Int64("user_id", user.ID),
		)
		return nil, fmt.Errorf("update balances for user %d: %w", user.ID, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, number, user_id, items_summary, total_price,
		                    points_used, points_earned, pickup_time, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		order.ID,
		order.Number,
		order.UserID,
		order.ItemsSummary,
		order.TotalPrice,
		order.PointsUsed,
		order.PointsEarned,
		order.PickupTime,
		order.Comment,
		order.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("number", order.Number),
			zap.Int64("user_id", order.UserID),
		)
		return nil, fmt.Errorf("create order %s: %w", order.Number, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit settlement",
			zap.Error(err),
			zap.String("number", order.Number),
		)
		return nil, fmt.Errorf("commit settlement %s: %w", order.Number, err)
	}

	return &user, nil
}

func (r *orderRepository) FindByNumber(ctx context.Context, number string) (*entity.Order, error) {
	query := `
		SELECT id, number, user_id, items_summary, total_price,
		       points_used, points_earned, pickup_time, comment, created_at
		FROM orders
		WHERE number = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, number).Scan(
		&order.ID,
		&order.Number,
		&order.UserID,
		&order.ItemsSummary,
		&order.TotalPrice,
		&order.PointsUsed,
		&order.PointsEarned,
		&order.PickupTime,
		&order.Comment,
		&order.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by number",
			zap.Error(err),
			zap.String("number", number),
		)
		return nil, fmt.Errorf("find order by number %s: %w", number, err)
	}

	return &order, nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID int64, limit int) ([]*entity.Order, error) {
	query := `
		SELECT id, number, user_id, items_summary, total_price,
		       points_used, points_earned, pickup_time, comment, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		r.log.Error("Failed to find orders by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find orders by user ID %d: %w", userID, err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.Number,
			&order.UserID,
			&order.ItemsSummary,
			&order.TotalPrice,
			&order.PointsUsed,
			&order.PointsEarned,
			&order.PickupTime,
			&order.Comment,
			&order.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Order, error) {
	query := `
		SELECT o.id, o.number, o.user_id, o.items_summary, o.total_price,
		       o.points_used, o.points_earned, o.pickup_time, o.comment,
		       o.created_at, u.name
		FROM orders o
		JOIN users u ON o.user_id = u.id
		ORDER BY o.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find recent orders",
			zap.Error(err),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find recent orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.Number,
			&order.UserID,
			&order.ItemsSummary,
			&order.TotalPrice,
			&order.PointsUsed,
			&order.PointsEarned,
			&order.PickupTime,
			&order.Comment,
			&order.CreatedAt,
			&order.UserName,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}
