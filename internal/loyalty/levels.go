// Package loyalty holds the tier table and the points settlement rules.
// Everything here is pure: no storage, no clock, no side effects.
package loyalty

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is one row of the tier table.
type Level struct {
	Name           string
	PointsRequired int
}

// Table is the ordered tier list, ascending by threshold. The first
// entry must have threshold 0 and thresholds must strictly increase.
type Table []Level

// DefaultTable returns the built-in five-level table. Deployments can
// override it with the LEVELS config value, see ParseTable.
func DefaultTable() Table {
	return Table{
		{Name: "Новичок", PointsRequired: 0},
		{Name: "Кофеман", PointsRequired: 100},
		{Name: "Бариста-Шеф", PointsRequired: 250},
		{Name: "Магистр Эспрессо", PointsRequired: 500},
		{Name: "Кофейный Монарх", PointsRequired: 1000},
	}
}

// ParseTable parses the "name:threshold,name:threshold,..." config
// format into a validated Table.
func ParseTable(s string) (Table, error) {
	var table Table
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, ":")
		if idx <= 0 {
			return nil, fmt.Errorf("parse level %q: want name:threshold", part)
		}

		threshold, err := strconv.Atoi(strings.TrimSpace(part[idx+1:]))
		if err != nil {
			return nil, fmt.Errorf("parse level %q threshold: %w", part, err)
		}

		table = append(table, Level{
			Name:           strings.TrimSpace(part[:idx]),
			PointsRequired: threshold,
		})
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	return table, nil
}

// Validate checks the table invariants: non-empty, floor entry at
// threshold 0, thresholds strictly increasing.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("level table is empty")
	}
	if t[0].PointsRequired != 0 {
		return fmt.Errorf("first level %q must have threshold 0, got %d", t[0].Name, t[0].PointsRequired)
	}
	for i := 1; i < len(t); i++ {
		if t[i].PointsRequired <= t[i-1].PointsRequired {
			return fmt.Errorf("level %q threshold %d not above previous %d",
				t[i].Name, t[i].PointsRequired, t[i-1].PointsRequired)
		}
	}
	return nil
}

// LevelFor returns the highest level whose threshold is at or below the
// given lifetime points. Negative input is treated as 0. The table
// always starts at threshold 0, so the floor fallback is unreachable in
// a valid table but handled anyway.
func (t Table) LevelFor(lifetimePoints int) Level {
	if lifetimePoints < 0 {
		lifetimePoints = 0
	}

	current := t[0]
	for _, level := range t {
		if lifetimePoints >= level.PointsRequired {
			current = level
		} else {
			break
		}
	}
	return current
}

// NextThreshold returns the smallest threshold strictly above the given
// lifetime points, or the top threshold when already at the last level.
// The cap saturates: there is no further progress to represent.
func (t Table) NextThreshold(lifetimePoints int) int {
	if lifetimePoints < 0 {
		lifetimePoints = 0
	}

	for _, level := range t {
		if level.PointsRequired > lifetimePoints {
			return level.PointsRequired
		}
	}
	return t[len(t)-1].PointsRequired
}
