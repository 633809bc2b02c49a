package loyalty

import (
	"errors"
	"fmt"
)

// ErrInsufficientPoints is returned by Settle when redemption exceeds
// the balance and overdraft is disabled.
var ErrInsufficientPoints = errors.New("insufficient points")

// Engine applies the settlement rules for one order.
//
// AllowOverdraft keeps the historical behavior: redeeming more points
// than the balance is accepted and drives the balance negative. Set it
// to false to reject over-redemption instead.
type Engine struct {
	Table           Table
	CashbackPercent int
	AllowOverdraft  bool
}

// Settlement is the points movement computed for one order.
type Settlement struct {
	PointsEarned int
	NewPoints    int
	NewLifetime  int
	LevelName    string
}

// Settle computes cashback, the new balances and the new tier for an
// order. Redeeming any points forfeits the entire cashback for that
// order: earning is all-or-nothing. Lifetime points only ever grow;
// redemption touches the spendable balance alone.
func (e Engine) Settle(points, lifetimePoints, totalPrice, pointsUsed int) (Settlement, error) {
	if totalPrice < 0 {
		return Settlement{}, fmt.Errorf("negative total price %d", totalPrice)
	}
	if pointsUsed < 0 {
		return Settlement{}, fmt.Errorf("negative points_used %d", pointsUsed)
	}

	if pointsUsed > points && !e.AllowOverdraft {
		return Settlement{}, fmt.Errorf("redeem %d with balance %d: %w", pointsUsed, points, ErrInsufficientPoints)
	}

	earned := 0
	if pointsUsed == 0 {
		earned = totalPrice * e.CashbackPercent / 100
	}

	newLifetime := lifetimePoints + earned

	return Settlement{
		PointsEarned: earned,
		NewPoints:    points - pointsUsed + earned,
		NewLifetime:  newLifetime,
		LevelName:    e.Table.LevelFor(newLifetime).Name,
	}, nil
}
