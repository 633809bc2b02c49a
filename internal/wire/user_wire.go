package wire

import (
	"coffee-shop/internal/adaptor"
	"coffee-shop/internal/data/repository"
	"coffee-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/auth - Register or refresh the user from the mini-app payload
	r.Post("/api/auth", userHandler.Authenticate)

	// GET /api/users/{id} - User profile with points and level
	r.Get("/api/users/{id}", userHandler.GetUser)

	// GET /api/users/{id}/orders - User's order history
	r.Get("/api/users/{id}/orders", orderHandler.GetUserOrders)
}
