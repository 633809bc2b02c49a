package wire

import (
	"coffee-shop/internal/adaptor"
	"coffee-shop/internal/data/repository"
	"coffee-shop/pkg/middleware"
	"coffee-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/menu - Categories with their products and modifiers
	r.Get("/api/menu", catalogHandler.GetMenu)

	// ==================== ADMIN ROUTES ====================
	// Category management
	r.Route("/api/admin/categories", func(r chi.Router) {
		r.Use(middleware.Admin(repo.User, config, log))

		r.Post("/", catalogHandler.CreateCategory)
		r.Put("/{id}", catalogHandler.UpdateCategory)
		r.Delete("/{id}", catalogHandler.DeleteCategory)
	})

	// Product management
	r.Route("/api/admin/products", func(r chi.Router) {
		r.Use(middleware.Admin(repo.User, config, log))

		r.Post("/", catalogHandler.CreateProduct)
		r.Put("/{id}", catalogHandler.UpdateProduct)
		r.Delete("/{id}", catalogHandler.DeleteProduct)
	})
}
