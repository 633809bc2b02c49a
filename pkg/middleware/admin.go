package middleware

import (
	"net/http"
	"strconv"

	"coffee-shop/internal/data/repository"
	"coffee-shop/pkg/utils"

	"go.uber.org/zap"
)

// Admin gates admin-only routes. The caller identifies itself with the
// X-Telegram-ID header; access requires the ID to be in the static
// allow-list or flagged is_admin in the users table. There is no session
// layer — identity is the opaque Telegram ID.
func Admin(userRepo repository.UserRepository, config *utils.Config, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			idHeader := r.Header.Get("X-Telegram-ID")
			if idHeader == "" {
				utils.ResponseUnauthorized(w, "Missing X-Telegram-ID header")
				return
			}

			callerID, err := strconv.ParseInt(idHeader, 10, 64)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid X-Telegram-ID header")
				return
			}

			if !config.IsAdminID(callerID) {
				user, err := userRepo.FindByID(r.Context(), callerID)
				if err != nil {
					logger.Error("Admin check: failed to get user",
						zap.Error(err), zap.Int64("caller_id", callerID))
					utils.ResponseInternalError(w, "Internal server error")
					return
				}

				if user == nil || !user.IsAdmin {
					logger.Warn("Admin check: non-admin access attempt",
						zap.Int64("caller_id", callerID),
						zap.String("path", r.URL.Path))
					utils.ResponseForbidden(w, "Admin access required")
					return
				}
			}

			ctx := utils.SetCallerContext(r.Context(), callerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
