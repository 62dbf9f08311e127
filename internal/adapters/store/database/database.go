package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mec-canteen/canteen/internal/adapters/store/errstore"
	"github.com/mec-canteen/canteen/internal/adapters/store/model"
)

type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

type option func(*Store)

func Logger(log *zap.Logger) option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

func New(ctx context.Context, cfg *Config, options ...option) (*Store, error) {
	var err error
	s := &Store{
		log: zap.NewNop(),
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed connect to database: %w", err)
	}

	s.db = db.WithContext(ctx)

	for _, opt := range options {
		opt(s)
	}

	err = s.db.AutoMigrate(
		&model.User{},
		&model.MenuItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.RechargeTransaction{},
	)

	if err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return s, nil
}

func (s *Store) CloseDB() error {
	db, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed getting database connection: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed close database connection: %w", err)
	}

	return nil
}

func (s *Store) RegisterUser(ctx context.Context, user *model.User) error {
	tx := s.db.WithContext(ctx)
	result := tx.Create(user)
	if err := result.Error; err != nil {
		var sqlError *pgconn.PgError
		if errors.As(err, &sqlError) && sqlError.Code == pgerrcode.UniqueViolation {
			if strings.Contains(sqlError.ConstraintName, "college_id") {
				return errstore.ErrCollegeIDNotUnique
			}
			return errstore.ErrEmailNotUnique
		}
		return fmt.Errorf("failed save user: %w", result.Error)
	}

	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	tx := s.db.WithContext(ctx)
	user := model.User{}
	result := tx.Where(&model.User{Email: email}).First(&user)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errors.Join(errstore.ErrNotFoundData, err)
		}
		return user, fmt.Errorf("error found user: %w", result.Error)
	}

	return user, nil
}

func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (model.User, error) {
	tx := s.db.WithContext(ctx)
	user := model.User{}
	result := tx.Where(&model.User{ID: userID}).First(&user)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errors.Join(errstore.ErrNotFoundData, err)
		}
		return user, fmt.Errorf("error found user: %w", result.Error)
	}

	return user, nil
}

func (s *Store) GetMenu(ctx context.Context, category model.MenuCategory) ([]*model.MenuItem, error) {
	items := []*model.MenuItem{}
	tx := s.db.WithContext(ctx)
	if err := tx.Where(&model.MenuItem{Category: category, Available: true}).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed get menu items: %w", err)
	}

	return items, nil
}

// CreateOrder debits the account and persists the order in one transaction.
// The account row is locked for the duration, serializing concurrent
// settlements on the same balance.
func (s *Store) CreateOrder(ctx context.Context, order *model.Order) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := model.User{}
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&model.User{ID: order.UserID}).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get user: %w", err)
		}

		if user.Balance.LessThan(order.TotalAmount) {
			return fmt.Errorf("%w: need %s have %s",
				errstore.ErrInsufficientFunds, order.TotalAmount.String(), user.Balance.String())
		}

		order.PreviousBalance = user.Balance
		order.RemainingBalance = user.Balance.Sub(order.TotalAmount)

		user.Balance = order.RemainingBalance
		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("failed save balance: %w", err)
		}

		if err := tx.Create(order).Error; err != nil {
			var sqlError *pgconn.PgError
			if errors.As(err, &sqlError) && sqlError.Code == pgerrcode.UniqueViolation {
				return errstore.ErrCodeNotUnique
			}
			return fmt.Errorf("failed save order: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, errstore.ErrInsufficientFunds) ||
			errors.Is(err, errstore.ErrNotFoundData) ||
			errors.Is(err, errstore.ErrCodeNotUnique) {
			return err
		}
		return fmt.Errorf("failed complete transaction: %w", err)
	}

	return nil
}

// CreateRecharge credits the account and persists the recharge record in one
// transaction. A credit cannot breach the balance floor, so only the lock and
// the snapshots matter here.
func (s *Store) CreateRecharge(ctx context.Context, recharge *model.RechargeTransaction) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := model.User{}
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&model.User{ID: recharge.UserID}).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed get user: %w", err)
		}

		recharge.PreviousBalance = user.Balance
		recharge.RemainingBalance = user.Balance.Add(recharge.Amount)

		user.Balance = recharge.RemainingBalance
		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("failed save balance: %w", err)
		}

		if err := tx.Create(recharge).Error; err != nil {
			var sqlError *pgconn.PgError
			if errors.As(err, &sqlError) && sqlError.Code == pgerrcode.UniqueViolation {
				return errstore.ErrCodeNotUnique
			}
			return fmt.Errorf("failed save recharge: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) || errors.Is(err, errstore.ErrCodeNotUnique) {
			return err
		}
		return fmt.Errorf("failed complete transaction: %w", err)
	}

	return nil
}

func (s *Store) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]*model.Order, error) {
	orders := []*model.Order{}
	tx := s.db.WithContext(ctx)
	if err := tx.Preload("Items").Where(&model.Order{UserID: userID}).
		Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed get orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, errstore.ErrNotFoundData
	}

	return orders, nil
}

func (s *Store) GetUserRecharges(ctx context.Context, userID uuid.UUID) ([]*model.RechargeTransaction, error) {
	recharges := []*model.RechargeTransaction{}
	tx := s.db.WithContext(ctx)
	if err := tx.Where(&model.RechargeTransaction{UserID: userID}).
		Order("created_at desc").Find(&recharges).Error; err != nil {
		return nil, fmt.Errorf("failed get recharges: %w", err)
	}
	if len(recharges) == 0 {
		return recharges, errstore.ErrNotFoundData
	}

	return recharges, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]*model.User, error) {
	users := []*model.User{}
	tx := s.db.WithContext(ctx)
	if err := tx.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed get users: %w", err)
	}

	return users, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]*model.Order, error) {
	orders := []*model.Order{}
	tx := s.db.WithContext(ctx)
	if err := tx.Preload("Items").Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed get orders: %w", err)
	}

	return orders, nil
}

func (s *Store) ListRecharges(ctx context.Context) ([]*model.RechargeTransaction, error) {
	recharges := []*model.RechargeTransaction{}
	tx := s.db.WithContext(ctx)
	if err := tx.Order("created_at desc").Find(&recharges).Error; err != nil {
		return nil, fmt.Errorf("failed get recharges: %w", err)
	}

	return recharges, nil
}
