package notify

import (
	"context"
	"errors"
	"testing"

	"coffee-shop/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOrderFinder struct {
	orders map[string]*entity.Order
	err    error
}

func (f *fakeOrderFinder) FindByNumber(ctx context.Context, number string) (*entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.orders[number], nil
}

func TestNotifyReady(t *testing.T) {
	finder := &fakeOrderFinder{orders: map[string]*entity.Order{
		"ORD-1234": testOrder("ORD-1234", 42),
	}}
	sender := &fakeSender{}

	n := NewNotifier(finder, sender, zap.NewNop())
	err := n.NotifyReady(context.Background(), "ORD-1234")
	require.NoError(t, err)

	require.Equal(t, 1, sender.count())
	assert.Equal(t, int64(42), sender.sent[0].userID)
	assert.Contains(t, sender.sent[0].msg.Text, "ORD-1234")
	assert.Contains(t, sender.sent[0].msg.Text, "готов")
}

func TestNotifyReadyUnknownOrder(t *testing.T) {
	finder := &fakeOrderFinder{orders: map[string]*entity.Order{}}
	sender := &fakeSender{}

	n := NewNotifier(finder, sender, zap.NewNop())
	err := n.NotifyReady(context.Background(), "ORD-0000")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Equal(t, 0, sender.count())
}

func TestNotifyReadyFinderError(t *testing.T) {
	finder := &fakeOrderFinder{err: errors.New("db down")}
	sender := &fakeSender{}

	n := NewNotifier(finder, sender, zap.NewNop())
	err := n.NotifyReady(context.Background(), "ORD-1234")
	require.Error(t, err)
}

func TestNotifyReadySwallowsDeliveryFailure(t *testing.T) {
	finder := &fakeOrderFinder{orders: map[string]*entity.Order{
		"ORD-1234": testOrder("ORD-1234", 42),
	}}
	sender := &fakeSender{err: errors.New("chat blocked")}

	n := NewNotifier(finder, sender, zap.NewNop())

	// The order exists: a blocked chat is not the caller's problem
	err := n.NotifyReady(context.Background(), "ORD-1234")
	assert.NoError(t, err)
}
