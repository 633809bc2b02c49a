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

	"go.uber.org/zap"
)

type UserService interface {
	// Authenticate upserts the user from the mini-app launch payload:
	// first call provisions the account, later calls refresh the profile.
	Authenticate(ctx context.Context, req *request.AuthRequest) (*response.UserResponse, error)

	// EnsureUser provisions the user from the bot /start command.
	EnsureUser(ctx context.Context, id int64, name string, avatarURL *string) (*entity.User, error)

	GetUser(ctx context.Context, id int64) (*response.UserResponse, error)
}

type userService struct {
	repo   repository.UserRepository
	levels loyalty.Table
	config *utils.Config
	log    *zap.Logger
}

func NewUserService(repo repository.UserRepository, levels loyalty.Table, config *utils.Config, log *zap.Logger) UserService {
	return &userService{
		repo:   repo,
		levels: levels,
		config: config,
		log:    log.With(zap.String("service", "user")),
	}
}

func (s *userService) Authenticate(ctx context.Context, req *request.AuthRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Auth validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("authenticate user %d: %w", req.ID, err)
	}

	if user != nil {
		// Existing user: refresh profile fields only
		if err := s.repo.UpdateProfile(ctx, req.ID, req.Name, req.AvatarURL); err != nil {
			return nil, fmt.Errorf("authenticate user %d: %w", req.ID, err)
		}
		user.Name = req.Name
		user.AvatarURL = req.AvatarURL

		resp := response.UserToResponse(user, s.levels)
		return &resp, nil
	}

	user, err = s.createUser(ctx, req.ID, req.Name, req.AvatarURL)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user, s.levels)
	return &resp, nil
}

func (s *userService) EnsureUser(ctx context.Context, id int64, name string, avatarURL *string) (*entity.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ensure user %d: %w", id, err)
	}
	if user != nil {
		return user, nil
	}

	return s.createUser(ctx, id, name, avatarURL)
}

func (s *userService) GetUser(ctx context.Context, id int64) (*response.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d not found", id)
	}

	resp := response.UserToResponse(user, s.levels)
	return &resp, nil
}

func (s *userService) createUser(ctx context.Context, id int64, name string, avatarURL *string) (*entity.User, error) {
	now := time.Now()
	user := &entity.User{
		ID:             id,
		Name:           name,
		AvatarURL:      avatarURL,
		Points:         s.config.Loyalty.StartingPoints,
		LifetimePoints: s.config.Loyalty.StartingLifetime,
		LevelName:      s.levels.LevelFor(s.config.Loyalty.StartingLifetime).Name,
		IsAdmin:        s.config.IsAdminID(id),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user %d: %w", id, err)
	}

	s.log.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("name", user.Name),
		zap.String("level", user.LevelName),
		zap.Bool("is_admin", user.IsAdmin),
	)

	return user, nil
}
