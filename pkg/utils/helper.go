package utils

import (
	"fmt"
	"math/rand"
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// OrderNumberPrefix is the display prefix for order numbers.
const OrderNumberPrefix = "ORD-"

// GenerateOrderNumber creates a short human-readable order number.
// Format: ORD-#### (4 random decimal digits). The orders table keeps a
// UUID primary key and a unique index on the number, so a collision
// fails the insert instead of silently merging two orders.
func GenerateOrderNumber() string {
	return fmt.Sprintf("%s%04d", OrderNumberPrefix, rand.Intn(9000)+1000)
}
