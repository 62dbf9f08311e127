package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mec-canteen/canteen/internal/adapters/store/database"
	"github.com/mec-canteen/canteen/internal/adapters/store/model"
)

type Config struct {
	Database *database.Config
}

type Store interface {
	RegisterUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (model.User, error)
	GetMenu(ctx context.Context, category model.MenuCategory) ([]*model.MenuItem, error)
	CreateOrder(ctx context.Context, order *model.Order) error
	CreateRecharge(ctx context.Context, recharge *model.RechargeTransaction) error
	GetUserOrders(ctx context.Context, userID uuid.UUID) ([]*model.Order, error)
	GetUserRecharges(ctx context.Context, userID uuid.UUID) ([]*model.RechargeTransaction, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	ListOrders(ctx context.Context) ([]*model.Order, error)
	ListRecharges(ctx context.Context) ([]*model.RechargeTransaction, error)
}

func New(ctx context.Context, cfg *Config, log *zap.Logger) (Store, error) {
	s, err := database.New(ctx, cfg.Database, database.Logger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return s, nil
}
