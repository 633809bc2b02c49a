package notify

import (
	"context"
	"time"

	"coffee-shop/internal/data/entity"

	"go.uber.org/zap"
)

// OrderSource is the read-only slice of storage the monitor needs.
type OrderSource interface {
	FindRecent(ctx context.Context, limit int) ([]*entity.Order, error)
}

// Monitor polls storage for orders that have not been announced yet and
// sends the "confirmed" notification for each.
//
// The seen-set lives in memory and is rebuilt from one bulk fetch at
// startup, so a restart does not re-notify orders already in storage.
// An order that appears and ages out of the recent window while the
// monitor is down is never notified: delivery is at most once. Running
// two monitors against the same storage duplicates notifications, so
// don't.
type Monitor struct {
	orders   OrderSource
	sender   Sender
	interval time.Duration
	limit    int

	paymentLinkTemplate string
	miniAppURL          string

	seen map[string]struct{}
	log  *zap.Logger
}

func NewMonitor(orders OrderSource, sender Sender, interval time.Duration, limit int, paymentLinkTemplate, miniAppURL string, log *zap.Logger) *Monitor {
	return &Monitor{
		orders:              orders,
		sender:              sender,
		interval:            interval,
		limit:               limit,
		paymentLinkTemplate: paymentLinkTemplate,
		miniAppURL:          miniAppURL,
		seen:                make(map[string]struct{}),
		log:                 log.With(zap.String("component", "order_monitor")),
	}
}

// Run primes the seen-set and polls until the context is cancelled. The
// in-flight check always completes before Run returns. Checks are
// strictly sequential; the seen-set has no other writer.
func (m *Monitor) Run(ctx context.Context) {
	m.prime(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.log.Info("Order monitor started",
		zap.Duration("interval", m.interval),
		zap.Int("limit", m.limit),
	)

	for {
		select {
		case <-ctx.Done():
			m.log.Info("Order monitor stopped")
			return
		case <-ticker.C:
			m.checkOnce(ctx)
		}
	}
}

// prime marks every order currently in storage as already announced.
func (m *Monitor) prime(ctx context.Context) {
	orders, err := m.orders.FindRecent(ctx, m.limit)
	if err != nil {
		m.log.Error("Failed to load existing orders", zap.Error(err))
		return
	}

	for _, order := range orders {
		m.seen[order.Number] = struct{}{}
	}

	m.log.Info("Loaded existing orders", zap.Int("count", len(m.seen)))
}

// checkOnce fetches the recent window and announces every unseen order.
// A failed delivery still marks the order seen: one attempt per order.
func (m *Monitor) checkOnce(ctx context.Context) {
	orders, err := m.orders.FindRecent(ctx, m.limit)
	if err != nil {
		m.log.Error("Failed to check for new orders", zap.Error(err))
		return
	}

	for _, order := range orders {
		if _, ok := m.seen[order.Number]; ok {
			continue
		}

		m.log.Info("New order detected",
			zap.String("number", order.Number),
			zap.Int64("user_id", order.UserID),
		)

		msg := ConfirmedMessage(order, m.paymentLinkTemplate, m.miniAppURL)
		if err := m.sender.Send(ctx, order.UserID, msg); err != nil {
			m.log.Error("Failed to send order notification",
				zap.Error(err),
				zap.String("number", order.Number),
				zap.Int64("user_id", order.UserID),
			)
		}

		m.seen[order.Number] = struct{}{}
	}
}
