package response

import (
	"coffee-shop/internal/data/entity"
	"coffee-shop/internal/loyalty"
)

type UserResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	AvatarURL       *string `json:"avatar_url,omitempty"`
	Points          int     `json:"points"`
	LifetimePoints  int     `json:"lifetime_points"`
	LevelName       string  `json:"level_name"`
	NextLevelPoints int     `json:"next_level_points"`
	IsAdmin         bool    `json:"is_admin"`
}

func UserToResponse(user *entity.User, table loyalty.Table) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		AvatarURL:       user.AvatarURL,
		Points:          user.Points,
		LifetimePoints:  user.LifetimePoints,
		LevelName:       user.LevelName,
		NextLevelPoints: table.NextThreshold(user.LifetimePoints),
		IsAdmin:         user.IsAdmin,
	}
}
