package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name           string
		lifetimePoints int
		want           string
	}{
		{"zero points", 0, "Новичок"},
		{"below first threshold", 99, "Новичок"},
		{"exactly at threshold", 100, "Кофеман"},
		{"between thresholds", 240, "Кофеман"},
		{"mid table", 250, "Бариста-Шеф"},
		{"just below top", 999, "Магистр Эспрессо"},
		{"exactly at top", 1000, "Кофейный Монарх"},
		{"far above top", 50000, "Кофейный Монарх"},
		{"negative clamped to zero", -5, "Новичок"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.LevelFor(tt.lifetimePoints).Name)
		})
	}
}

func TestNextThreshold(t *testing.T) {
	table := DefaultTable()

	assert.Equal(t, 100, table.NextThreshold(0))
	assert.Equal(t, 100, table.NextThreshold(99))
	assert.Equal(t, 250, table.NextThreshold(100))
	assert.Equal(t, 1000, table.NextThreshold(999))

	// At the top level the cap saturates
	assert.Equal(t, 1000, table.NextThreshold(1000))
	assert.Equal(t, 1000, table.NextThreshold(5000))
}

func TestParseTable(t *testing.T) {
	table, err := ParseTable("Bronze:0, Silver:100, Gold:500")
	require.NoError(t, err)
	require.Len(t, table, 3)

	assert.Equal(t, Level{Name: "Bronze", PointsRequired: 0}, table[0])
	assert.Equal(t, Level{Name: "Silver", PointsRequired: 100}, table[1])
	assert.Equal(t, Level{Name: "Gold", PointsRequired: 500}, table[2])
}

func TestParseTableRussianNames(t *testing.T) {
	table, err := ParseTable("Новичок:0,Кофеман:100,Бариста-Шеф:250,Магистр Эспрессо:500,Кофейный Монарх:1000")
	require.NoError(t, err)
	assert.Equal(t, DefaultTable(), table)
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing threshold", "Bronze"},
		{"non-numeric threshold", "Bronze:abc"},
		{"first level not zero", "Bronze:10,Silver:100"},
		{"non-increasing thresholds", "Bronze:0,Silver:100,Gold:100"},
		{"decreasing thresholds", "Bronze:0,Silver:200,Gold:100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTable(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestValidateDefaultTable(t *testing.T) {
	assert.NoError(t, DefaultTable().Validate())
}
