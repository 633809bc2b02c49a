package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is created once at checkout and never updated or deleted.
// Number is the short human-readable token (ORD-####) shown to the
// customer and used by notifications; the UUID is the storage identity.
type Order struct {
	ID           uuid.UUID `db:"id"`
	Number       string    `db:"number"`
	UserID       int64     `db:"user_id"`
	ItemsSummary string    `db:"items_summary"`
	TotalPrice   int       `db:"total_price"`
	PointsUsed   int       `db:"points_used"`
	PointsEarned int       `db:"points_earned"`
	PickupTime   *string   `db:"pickup_time"`
	Comment      *string   `db:"comment"`
	CreatedAt    time.Time `db:"created_at"`

	// UserName is populated by queries that join users (recent-order
	// listings for the bridge and the admin view). Not a column.
	UserName string
}
