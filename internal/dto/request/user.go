package request

// AuthRequest carries the Telegram profile sent by the mini-app on
// launch. Creates the user on first call, refreshes the profile after.
type AuthRequest struct {
	ID        int64   `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}
