package request

type CreateOrderRequest struct {
	UserID       int64   `json:"user_id" validate:"required"`
	ItemsSummary string  `json:"items_summary" validate:"required"`
	TotalPrice   int     `json:"total_price" validate:"required,gte=1"`
	PointsUsed   int     `json:"points_used" validate:"gte=0"`
	PickupTime   *string `json:"pickup_time,omitempty"`
	Comment      *string `json:"comment,omitempty"`
}
