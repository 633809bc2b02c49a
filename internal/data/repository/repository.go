package repository

import (
	"coffee-shop/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Order    OrderRepository
	Category CategoryRepository
	Product  ProductRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Order:    NewOrderRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Product:  NewProductRepository(db, log),
	}
}
