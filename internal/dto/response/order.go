package response

import (
	"time"

	"coffee-shop/internal/data/entity"
)

type OrderResponse struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	UserID       int64     `json:"user_id"`
	UserName     string    `json:"user_name,omitempty"`
	ItemsSummary string    `json:"items_summary"`
	TotalPrice   int       `json:"total_price"`
	PointsUsed   int       `json:"points_used"`
	PointsEarned int       `json:"points_earned"`
	PickupTime   *string   `json:"pickup_time,omitempty"`
	Comment      *string   `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:           order.ID.String(),
		Number:       order.Number,
		UserID:       order.UserID,
		UserName:     order.UserName,
		ItemsSummary: order.ItemsSummary,
		TotalPrice:   order.TotalPrice,
		PointsUsed:   order.PointsUsed,
		PointsEarned: order.PointsEarned,
		PickupTime:   order.PickupTime,
		Comment:      order.Comment,
		CreatedAt:    order.CreatedAt,
	}
}
