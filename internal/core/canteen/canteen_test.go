package canteen_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mec-canteen/canteen/internal/adapters/store/errstore"
	"github.com/mec-canteen/canteen/internal/adapters/store/model"
	"github.com/mec-canteen/canteen/internal/core/canteen"
	store "github.com/mec-canteen/canteen/internal/mocks/store"
)

func newTestConfig() *canteen.Config {
	return &canteen.Config{SettleTimeout: time.Second * 3}
}

func TestCanteen_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name     string
		items    []canteen.LineItem
		storeErr error
		wantErr  error
	}{
		{
			name: "ok",
			items: []canteen.LineItem{
				{MenuItemID: 1, Name: "Dosa", Price: decimal.NewFromInt(30), Quantity: 2},
				{MenuItemID: 2, Name: "Tea", Price: decimal.NewFromFloat(12.50), Quantity: 1},
			},
		},
		{
			name:    "empty order",
			items:   []canteen.LineItem{},
			wantErr: canteen.ErrEmptyOrder,
		},
		{
			name: "zero quantity",
			items: []canteen.LineItem{
				{MenuItemID: 1, Name: "Dosa", Price: decimal.NewFromInt(30), Quantity: 0},
			},
			wantErr: canteen.ErrInvalidLineItem,
		},
		{
			name: "negative price",
			items: []canteen.LineItem{
				{MenuItemID: 1, Name: "Dosa", Price: decimal.NewFromInt(-30), Quantity: 1},
			},
			wantErr: canteen.ErrInvalidLineItem,
		},
		{
			name: "insufficient funds",
			items: []canteen.LineItem{
				{MenuItemID: 1, Name: "Thali", Price: decimal.NewFromInt(500), Quantity: 1},
			},
			storeErr: errstore.ErrInsufficientFunds,
			wantErr:  errstore.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			balance := decimal.NewFromInt(100)
			storeMock := store.NewMockStore(ctrl)
			if tt.wantErr == nil || tt.storeErr != nil {
				storeMock.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *model.Order) error {
						if tt.storeErr != nil {
							return tt.storeErr
						}
						order.PreviousBalance = balance
						order.RemainingBalance = balance.Sub(order.TotalAmount)
						return nil
					}).
					Times(1)
			}

			service := canteen.New(newTestConfig(), storeMock)
			order, err := service.PlaceOrder(ctx, userID, tt.items)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, order)
				return
			}

			require.NoError(t, err)
			wantTotal := decimal.NewFromFloat(72.50)
			assert.True(t, order.TotalAmount.Equal(wantTotal), "total %s", order.TotalAmount)
			assert.Equal(t, 3, order.TotalItems)
			assert.Equal(t, model.OrderStateCompleted, order.Status)
			assert.True(t, order.PreviousBalance.Sub(order.TotalAmount).Equal(order.RemainingBalance))
			assert.Contains(t, order.Code, canteen.OrderCodePrefix)
			assert.Len(t, order.Items, 2)
		})
	}
}

func TestCanteen_PlaceOrder_Concurrent(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var mu sync.Mutex
	balance := decimal.NewFromInt(100)

	storeMock := store.NewMockStore(ctrl)
	storeMock.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *model.Order) error {
			mu.Lock()
			defer mu.Unlock()
			if balance.LessThan(order.TotalAmount) {
				return errstore.ErrInsufficientFunds
			}
			order.PreviousBalance = balance
			balance = balance.Sub(order.TotalAmount)
			order.RemainingBalance = balance
			return nil
		}).
		Times(2)

	service := canteen.New(newTestConfig(), storeMock)

	items := []canteen.LineItem{
		{MenuItemID: 1, Name: "Meal", Price: decimal.NewFromInt(60), Quantity: 1},
	}

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.PlaceOrder(ctx, userID, items)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var failed, succeeded int
	for err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, errstore.ErrInsufficientFunds)
			failed++
		} else {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, failed)
	assert.True(t, balance.Equal(decimal.NewFromInt(40)), "final balance %s", balance)
}

func TestCanteen_PlaceOrder_Timeout(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := store.NewMockStore(ctrl)
	storeMock.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		Return(context.DeadlineExceeded).
		Times(1)

	service := canteen.New(newTestConfig(), storeMock)
	_, err := service.PlaceOrder(ctx, uuid.New(), []canteen.LineItem{
		{MenuItemID: 1, Name: "Meal", Price: decimal.NewFromInt(10), Quantity: 1},
	})

	assert.ErrorIs(t, err, canteen.ErrSettlementTimeout)
}

func TestCanteen_Recharge(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name    string
		amount  decimal.Decimal
		mode    model.PaymentMode
		wantErr error
	}{
		{
			name:   "ok",
			amount: decimal.NewFromFloat(250.00),
			mode:   model.PaymentModeUPI,
		},
		{
			name:    "zero amount",
			amount:  decimal.Zero,
			mode:    model.PaymentModeUPI,
			wantErr: canteen.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			amount:  decimal.NewFromInt(-50),
			mode:    model.PaymentModeCard,
			wantErr: canteen.ErrInvalidAmount,
		},
		{
			name:    "unknown payment mode",
			amount:  decimal.NewFromInt(50),
			mode:    model.PaymentMode("Cash"),
			wantErr: canteen.ErrInvalidPaymentMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			balance := decimal.NewFromInt(100)
			storeMock := store.NewMockStore(ctrl)
			if tt.wantErr == nil {
				storeMock.EXPECT().
					CreateRecharge(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, recharge *model.RechargeTransaction) error {
						recharge.PreviousBalance = balance
						recharge.RemainingBalance = balance.Add(recharge.Amount)
						return nil
					}).
					Times(1)
			}

			service := canteen.New(newTestConfig(), storeMock)
			recharge, err := service.Recharge(ctx, userID, tt.amount, tt.mode)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, recharge)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.RechargeStateSuccess, recharge.Status)
			assert.True(t, recharge.Amount.Equal(decimal.NewFromFloat(250.00)))
			assert.True(t, recharge.RemainingBalance.Equal(decimal.NewFromFloat(350.00)),
				"remaining %s", recharge.RemainingBalance)
			assert.True(t, recharge.PreviousBalance.Add(recharge.Amount).Equal(recharge.RemainingBalance))
			assert.Contains(t, recharge.Code, canteen.RechargeCodePrefix)
		})
	}
}

func TestCanteen_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		reg     canteen.Registration
		wantErr error
	}{
		{
			name: "ok",
			reg: canteen.Registration{
				CollegeID: "MEC2024001",
				Name:      "Ananya",
				Email:     "ananya@mec.edu",
				Password:  "pass",
			},
		},
		{
			name: "bad email",
			reg: canteen.Registration{
				CollegeID: "MEC2024001",
				Name:      "Ananya",
				Email:     "not-an-email",
				Password:  "pass",
			},
			wantErr: canteen.ErrEmailNotValid,
		},
		{
			name: "empty password",
			reg: canteen.Registration{
				CollegeID: "MEC2024001",
				Name:      "Ananya",
				Email:     "ananya@mec.edu",
			},
			wantErr: canteen.ErrPasswordNotValid,
		},
		{
			name: "unknown role",
			reg: canteen.Registration{
				CollegeID: "MEC2024001",
				Name:      "Ananya",
				Email:     "ananya@mec.edu",
				Password:  "pass",
				Role:      model.Role("chef"),
			},
			wantErr: canteen.ErrRoleNotValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storeMock := store.NewMockStore(ctrl)
			if tt.wantErr == nil {
				storeMock.EXPECT().
					RegisterUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *model.User) error {
						assert.Equal(t, model.RoleStudent, user.Role)
						assert.True(t, user.Balance.IsZero())
						assert.NotEmpty(t, user.PasswordHash)
						return nil
					}).
					Times(1)
			}

			service := canteen.New(newTestConfig(), storeMock)
			err := service.Register(ctx, tt.reg)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCanteen_GetStats(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeMock := store.NewMockStore(ctrl)
	storeMock.EXPECT().ListUsers(gomock.Any()).Return([]*model.User{{}, {}}, nil).Times(1)
	storeMock.EXPECT().ListOrders(gomock.Any()).Return([]*model.Order{
		{TotalAmount: decimal.NewFromInt(120)},
		{TotalAmount: decimal.NewFromInt(80)},
	}, nil).Times(1)
	storeMock.EXPECT().ListRecharges(gomock.Any()).Return([]*model.RechargeTransaction{
		{Amount: decimal.NewFromInt(500), Status: model.RechargeStateSuccess},
		{Amount: decimal.NewFromInt(300), Status: model.RechargeStateFailed},
	}, nil).Times(1)

	service := canteen.New(newTestConfig(), storeMock)
	stats, err := service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(200)), "revenue %s", stats.TotalRevenue)
	assert.True(t, stats.TotalRecharged.Equal(decimal.NewFromInt(500)), "recharged %s", stats.TotalRecharged)
}
