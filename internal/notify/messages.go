package notify

import (
	"fmt"
	"strings"

	"coffee-shop/internal/data/entity"
)

// PaymentLink fills the order number into the configured payment link
// template ("{order_id}" placeholder).
func PaymentLink(template, number string) string {
	return strings.ReplaceAll(template, "{order_id}", number)
}

// ConfirmedMessage builds the "order confirmed" notification with the
// payment and mini-app buttons.
func ConfirmedMessage(order *entity.Order, paymentLinkTemplate, miniAppURL string) Message {
	var b strings.Builder

	b.WriteString("✅ <b>Заказ подтверждён!</b>\n\n")
	fmt.Fprintf(&b, "🔹 <b>Номер заказа:</b> %s\n", order.Number)
	fmt.Fprintf(&b, "📋 <b>Состав:</b> %s\n", order.ItemsSummary)
	fmt.Fprintf(&b, "💰 <b>Сумма:</b> %d ₽", order.TotalPrice)

	if order.PickupTime != nil && *order.PickupTime != "" {
		fmt.Fprintf(&b, "\n⏰ <b>Время получения:</b> %s", *order.PickupTime)
	}

	b.WriteString("\n\nОплатите заказ, нажав кнопку ниже:")

	return Message{
		Text: b.String(),
		Buttons: []Button{
			{Label: "💳 Оплатить", URL: PaymentLink(paymentLinkTemplate, order.Number)},
			{Label: "📱 В приложение", URL: miniAppURL},
		},
	}
}

// ReadyMessage builds the "order ready for pickup" notification.
func ReadyMessage(number string) Message {
	text := fmt.Sprintf(`🎉 <b>Ваш заказ готов!</b>

🔹 <b>Номер заказа:</b> %s

☕ Ваш кофе уже ждёт вас! Заберите его в кофейне.

Спасибо, что выбираете History Coffee! 💚`, number)

	return Message{Text: text}
}
