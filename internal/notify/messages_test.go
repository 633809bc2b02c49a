package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentLink(t *testing.T) {
	link := PaymentLink("https://pay.example/order/{order_id}", "ORD-1234")
	assert.Equal(t, "https://pay.example/order/ORD-1234", link)

	// Template without the placeholder stays as is
	assert.Equal(t, "https://pay.example/static", PaymentLink("https://pay.example/static", "ORD-1234"))
}

func TestConfirmedMessage(t *testing.T) {
	order := testOrder("ORD-1234", 42)

	msg := ConfirmedMessage(order, "https://pay.example/{order_id}", "https://t.me/bot/app")

	assert.Contains(t, msg.Text, "ORD-1234")
	assert.Contains(t, msg.Text, "Капучино x1")
	assert.Contains(t, msg.Text, "350 ₽")
	assert.NotContains(t, msg.Text, "Время получения")

	require.Len(t, msg.Buttons, 2)
	assert.Equal(t, "https://pay.example/ORD-1234", msg.Buttons[0].URL)
	assert.Equal(t, "https://t.me/bot/app", msg.Buttons[1].URL)
}

func TestConfirmedMessagePickupTime(t *testing.T) {
	order := testOrder("ORD-1234", 42)
	pickup := "14:30"
	order.PickupTime = &pickup

	msg := ConfirmedMessage(order, "https://pay.example/{order_id}", "https://t.me/bot/app")
	assert.Contains(t, msg.Text, "14:30")
	assert.Contains(t, msg.Text, "Время получения")
}
