package wire

import (
	"coffee-shop/internal/adaptor"
	"coffee-shop/internal/data/repository"
	"coffee-shop/pkg/middleware"
	"coffee-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/orders - Place an order (points settled atomically)
	r.Post("/api/orders", orderHandler.CreateOrder)

	// GET /api/orders/{number} - Look up an order by its number
	r.Get("/api/orders/{number}", orderHandler.GetOrder)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/orders", func(r chi.Router) {
		r.Use(middleware.Admin(repo.User, config, log))

		// GET /api/admin/orders - Recent orders across all users (admin)
		r.Get("/", orderHandler.ListRecent)
	})
}
