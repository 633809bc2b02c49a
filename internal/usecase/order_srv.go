package usecase

import (
	"context"
	"fmt"
	"time"

	"coffee-shop/internal/data/entity"
	"coffee-shop/internal/data/repository"
	"coffee-shop/internal/dto/request"
	"coffee-shop/internal/dto/response"
	"coffee-shop/internal/loyalty"
	"coffee-shop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	// CreateOrder settles the order: computes cashback, moves the
	// balances, refreshes the tier and persists user and order in one
	// transaction. Orders are immutable once created.
	CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error)

	GetOrder(ctx context.Context, number string) (*response.OrderResponse, error)
	GetUserOrders(ctx context.Context, userID int64, limit int) ([]response.OrderResponse, error)

	// ListRecent is the admin view of the newest orders.
	ListRecent(ctx context.Context, limit int) ([]response.OrderResponse, error)
}

type orderService struct {
	repo   *repository.Repository
	engine loyalty.Engine
	log    *zap.Logger
}

func NewOrderService(repo *repository.Repository, engine loyalty.Engine, log *zap.Logger) OrderService {
	return &orderService{
		repo:   repo,
		engine: engine,
		log:    log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	order := &entity.Order{
		ID:           uuid.New(),
		Number:       utils.GenerateOrderNumber(),
		UserID:       req.UserID,
		ItemsSummary: req.ItemsSummary,
		TotalPrice:   req.TotalPrice,
		PointsUsed:   req.PointsUsed,
		PickupTime:   req.PickupTime,
		Comment:      req.Comment,
		CreatedAt:    time.Now(),
	}

	user, err := s.repo.Order.CreateSettled(ctx, order, func(u *entity.User) error {
		settlement, err := s.engine.Settle(u.Points, u.LifetimePoints, req.TotalPrice, req.PointsUsed)
		if err != nil {
			return err
		}

		order.PointsEarned = settlement.PointsEarned
		u.Points = settlement.NewPoints
		u.LifetimePoints = settlement.NewLifetime
		u.LevelName = settlement.LevelName
		return nil
	})

	if err != nil {
		s.log.Warn("Order settlement failed",
			zap.Error(err),
			zap.Int64("user_id", req.UserID),
			zap.String("number", order.Number),
		)
		return nil, err
	}

	s.log.Info("Order created",
		zap.String("number", order.Number),
		zap.Int64("user_id", user.ID),
		zap.Int("total_price", order.TotalPrice),
		zap.Int("points_used", order.PointsUsed),
		zap.Int("points_earned", order.PointsEarned),
		zap.Int("new_balance", user.Points),
		zap.String("level", user.LevelName),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetOrder(ctx context.Context, number string) (*response.OrderResponse, error) {
	order, err := s.repo.Order.FindByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", number, err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %s not found", number)
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID int64, limit int) ([]response.OrderResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get orders for user %d: %w", userID, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d not found", userID)
	}

	orders, err := s.repo.Order.FindByUserID(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get orders for user %d: %w", userID, err)
	}

	responses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = response.OrderToResponse(order)
	}

	return responses, nil
}

func (s *orderService) ListRecent(ctx context.Context, limit int) ([]response.OrderResponse, error) {
	orders, err := s.repo.Order.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}

	responses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = response.OrderToResponse(order)
	}

	s.log.Info("Recent orders retrieved", zap.Int("count", len(orders)))
	return responses, nil
}
