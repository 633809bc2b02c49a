package usecase

import (
	"coffee-shop/internal/data/repository"
	"coffee-shop/internal/loyalty"
	"coffee-shop/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User    UserService
	Order   OrderService
	Catalog CatalogService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	table := loadLevelTable(config, log)

	engine := loyalty.Engine{
		Table:           table,
		CashbackPercent: config.Loyalty.CashbackPercent,
		AllowOverdraft:  config.Loyalty.AllowOverdraft,
	}

	return &Service{
		User:    NewUserService(repo.User, table, config, log),
		Order:   NewOrderService(repo, engine, log),
		Catalog: NewCatalogService(repo, log),
	}
}

// loadLevelTable builds the tier table from config, falling back to the
// built-in five levels when the value does not parse.
func loadLevelTable(config *utils.Config, log *zap.Logger) loyalty.Table {
	table, err := loyalty.ParseTable(config.Loyalty.Levels)
	if err != nil {
		log.Warn("Invalid LEVELS config, using default level table",
			zap.Error(err),
			zap.String("levels", config.Loyalty.Levels),
		)
		return loyalty.DefaultTable()
	}
	return table
}
