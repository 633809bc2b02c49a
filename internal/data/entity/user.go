package entity

import (
	"time"
)

// User is keyed by the Telegram ID, there is no separate surrogate key.
// LevelName is a denormalized cache of the tier derived from
// LifetimePoints; every path that mutates the balances refreshes it.
type User struct {
	ID             int64     `db:"id"` // Telegram ID
	Name           string    `db:"name"`
	AvatarURL      *string   `db:"avatar_url"`
	Points         int       `db:"points"`          // spendable balance
	LifetimePoints int       `db:"lifetime_points"` // never decreases
	LevelName      string    `db:"level_name"`
	IsAdmin        bool      `db:"is_admin"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
