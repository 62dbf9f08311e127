package canteen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mec-canteen/canteen/internal/adapters/store/model"
)

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

type Config struct {
	SettleTimeout time.Duration `env:"SETTLE_TIMEOUT" envDefault:"3s"`
}

type Canteen struct {
	log    *zap.Logger
	cfg    *Config
	store  Store
	secret string
	codes  codeGenerator
}

type option func(*Canteen)

func SetSecretKey(secret string) option {
	return func(c *Canteen) {
		c.secret = secret
	}
}

func Logger(log *zap.Logger) option {
	return func(c *Canteen) {
		c.log = log
	}
}

func New(cfg *Config, store Store, options ...option) *Canteen {
	c := &Canteen{
		log:   zap.NewNop(),
		store: store,
		cfg:   cfg,
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

type Registration struct {
	CollegeID  string
	Name       string
	Email      string
	Password   string
	Role       model.Role
	RFIDCardID *string
}

// LineItem is one cart entry submitted for settlement.
type LineItem struct {
	MenuItemID uint
	Name       string
	Price      decimal.Decimal
	Quantity   int
}

// Stats is the admin dashboard aggregation.
type Stats struct {
	TotalUsers     int
	TotalOrders    int
	TotalRevenue   decimal.Decimal
	TotalRecharged decimal.Decimal
}

func (c *Canteen) Register(ctx context.Context, reg Registration) error {
	if err := validateEmail(reg.Email); err != nil {
		return fmt.Errorf("email invalidate: %w", err)
	}

	if err := validatePassword(reg.Password); err != nil {
		return fmt.Errorf("password invalidate: %w", err)
	}

	if err := validateCollegeID(reg.CollegeID); err != nil {
		return fmt.Errorf("college id invalidate: %w", err)
	}

	if reg.Role == "" {
		reg.Role = model.RoleStudent
	}
	if err := validateRole(reg.Role); err != nil {
		return fmt.Errorf("role invalidate: %w", err)
	}

	hashPass, err := HashPassword(reg.Password)
	if err != nil {
		return fmt.Errorf("failed hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		CollegeID:    reg.CollegeID,
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: hashPass,
		RFIDCardID:   reg.RFIDCardID,
		Role:         reg.Role,
		Balance:      decimal.Zero,
	}

	err = c.store.RegisterUser(ctx, &user)
	if err != nil {
		return fmt.Errorf("failed register user: %w", err)
	}

	return nil
}

func (c *Canteen) Authorization(ctx context.Context, email, password string) (model.User, error) {
	var user model.User
	var err error
	if err := validateEmail(email); err != nil {
		return user, fmt.Errorf("email invalidate: %w", err)
	}

	if err := validatePassword(password); err != nil {
		return user, fmt.Errorf("password invalidate: %w", err)
	}

	user, err = c.store.GetUserByEmail(ctx, email)
	if err != nil {
		return user, fmt.Errorf("failed getting user `%s`: %w", email, err)
	}

	if ok := checkPasswordHash(password, user.PasswordHash); !ok {
		return user, ErrPasswordNotEquale
	}

	return user, nil
}

func (c *Canteen) GetUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := c.store.GetUserByID(ctx, userID)
	if err != nil {
		return user, fmt.Errorf("failed getting user: %w", err)
	}

	return user, nil
}

func (c *Canteen) GetMenu(ctx context.Context, category model.MenuCategory) ([]*model.MenuItem, error) {
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	items, err := c.store.GetMenu(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed getting menu: %w", err)
	}

	return items, nil
}

// PlaceOrder settles a cart against the account balance. Validation and the
// code run first, then the store commits the debit and the order record as
// one transaction. On insufficient funds nothing is written.
func (c *Canteen) PlaceOrder(ctx context.Context, userID uuid.UUID, items []LineItem) (*model.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	totalAmount := decimal.Zero
	totalItems := 0
	orderItems := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 || item.Price.IsNegative() || item.Name == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLineItem, item.Name)
		}
		totalAmount = totalAmount.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		totalItems += item.Quantity
		orderItems = append(orderItems, model.OrderItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		})
	}

	order := &model.Order{
		ID:          uuid.New(),
		Code:        c.codes.Next(OrderCodePrefix),
		UserID:      userID,
		Items:       orderItems,
		TotalItems:  totalItems,
		TotalAmount: totalAmount,
		Status:      model.OrderStateCompleted,
	}

	sctx, cancel := context.WithTimeout(ctx, c.cfg.SettleTimeout)
	defer cancel()

	if err := c.store.CreateOrder(sctx, order); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", ErrSettlementTimeout, err)
		}
		return nil, fmt.Errorf("failed create order: %w", err)
	}

	c.log.Info("order settled",
		zap.String("code", order.Code),
		zap.String("userID", userID.String()),
		zap.String("total", totalAmount.String()),
	)

	return order, nil
}

// Recharge credits the account and records the transaction. The payment is
// modelled as synchronously successful; there is no gateway callback.
func (c *Canteen) Recharge(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, mode model.PaymentMode) (*model.RechargeTransaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if err := validatePaymentMode(mode); err != nil {
		return nil, err
	}

	recharge := &model.RechargeTransaction{
		ID:          uuid.New(),
		Code:        c.codes.Next(RechargeCodePrefix),
		UserID:      userID,
		Amount:      amount,
		PaymentMode: mode,
		Status:      model.RechargeStateSuccess,
	}

	sctx, cancel := context.WithTimeout(ctx, c.cfg.SettleTimeout)
	defer cancel()

	if err := c.store.CreateRecharge(sctx, recharge); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", ErrSettlementTimeout, err)
		}
		return nil, fmt.Errorf("failed create recharge: %w", err)
	}

	c.log.Info("recharge settled",
		zap.String("code", recharge.Code),
		zap.String("userID", userID.String()),
		zap.String("amount", amount.String()),
	)

	return recharge, nil
}

func (c *Canteen) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]*model.Order, error) {
	orders, err := c.store.GetUserOrders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed getting orders by user: %w", err)
	}
	return orders, nil
}

func (c *Canteen) GetUserRecharges(ctx context.Context, userID uuid.UUID) ([]*model.RechargeTransaction, error) {
	recharges, err := c.store.GetUserRecharges(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed getting recharges by user: %w", err)
	}
	return recharges, nil
}

func (c *Canteen) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := c.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting users: %w", err)
	}
	return users, nil
}

func (c *Canteen) ListOrders(ctx context.Context) ([]*model.Order, error) {
	orders, err := c.store.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting orders: %w", err)
	}
	return orders, nil
}

func (c *Canteen) ListRecharges(ctx context.Context) ([]*model.RechargeTransaction, error) {
	recharges, err := c.store.ListRecharges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed getting recharges: %w", err)
	}
	return recharges, nil
}

func (c *Canteen) GetStats(ctx context.Context) (Stats, error) {
	stats := Stats{
		TotalRevenue:   decimal.Zero,
		TotalRecharged: decimal.Zero,
	}

	users, err := c.store.ListUsers(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed getting users: %w", err)
	}
	stats.TotalUsers = len(users)

	orders, err := c.store.ListOrders(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed getting orders: %w", err)
	}
	stats.TotalOrders = len(orders)
	for _, order := range orders {
		stats.TotalRevenue = stats.TotalRevenue.Add(order.TotalAmount)
	}

	recharges, err := c.store.ListRecharges(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed getting recharges: %w", err)
	}
	for _, recharge := range recharges {
		if recharge.Status == model.RechargeStateSuccess {
			stats.TotalRecharged = stats.TotalRecharged.Add(recharge.Amount)
		}
	}

	return stats, nil
}
