package notify

import (
	"context"
	"fmt"

	"coffee-shop/internal/data/entity"

	"go.uber.org/zap"
)

// OrderFinder resolves an order number to its order.
type OrderFinder interface {
	FindByNumber(ctx context.Context, number string) (*entity.Order, error)
}

// Notifier sends the "order ready" notification on demand.
type Notifier struct {
	orders OrderFinder
	sender Sender
	log    *zap.Logger
}

func NewNotifier(orders OrderFinder, sender Sender, log *zap.Logger) *Notifier {
	return &Notifier{
		orders: orders,
		sender: sender,
		log:    log.With(zap.String("component", "notifier")),
	}
}

// NotifyReady looks up the order and tells its owner the order is ready
// for pickup. An unknown number is an error; a delivery failure is
// logged and swallowed so the caller's flow is not broken by a blocked
// chat.
func (n *Notifier) NotifyReady(ctx context.Context, number string) error {
	order, err := n.orders.FindByNumber(ctx, number)
	if err != nil {
		return fmt.Errorf("find order: %w", err)
	}

	if order == nil {
		return fmt.Errorf("order %s not found", number)
	}

	msg := ReadyMessage(order.Number)
	if err := n.sender.Send(ctx, order.UserID, msg); err != nil {
		n.log.Error("Failed to deliver ready notification",
			zap.Error(err),
			zap.String("number", order.Number),
			zap.Int64("user_id", order.UserID),
		)
		return nil
	}

	n.log.Info("Ready notification sent",
		zap.String("number", order.Number),
		zap.Int64("user_id", order.UserID),
	)

	return nil
}
