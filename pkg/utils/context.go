package utils

import (
	"context"
)

type contextKey string

const CallerIDKey contextKey = "caller_id"

// SetCallerContext stores the caller's Telegram ID in the context.
func SetCallerContext(ctx context.Context, callerID int64) context.Context {
	return context.WithValue(ctx, CallerIDKey, callerID)
}

// GetCallerIDFromContext returns the caller's Telegram ID set by the
// admin middleware.
func GetCallerIDFromContext(ctx context.Context) (int64, bool) {
	callerVal := ctx.Value(CallerIDKey)
	if callerVal == nil {
		return 0, false
	}

	callerID, ok := callerVal.(int64)
	return callerID, ok
}
