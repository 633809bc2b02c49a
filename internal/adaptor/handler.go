package adaptor

import (
	"coffee-shop/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	User    *UserHandler
	Order   *OrderHandler
	Catalog *CatalogHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:    NewUserHandler(service.User, log),
		Order:   NewOrderHandler(service.Order, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
	}
}
