package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mec-canteen/canteen/internal/adapters/store/model"
)

type tRegistration struct {
	CollegeID  string  `json:"college_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Role       string  `json:"role,omitempty"`
	RFIDCardID *string `json:"rfid_card_id,omitempty"`
}

type tAuthorization struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tMenuItem struct {
	ID       uint               `json:"id"`
	Name     string             `json:"name"`
	Category model.MenuCategory `json:"category"`
	Price    decimal.Decimal    `json:"price"`
	ImageURL string             `json:"image_url"`
}

type tLineItem struct {
	MenuItemID uint            `json:"menu_item_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

type tPlaceOrder struct {
	Items []tLineItem `json:"items"`
}

type tBalance struct {
	Balance decimal.Decimal `json:"balance"`
}

type tReceipt struct {
	issuedAt         time.Time
	OrderCode        string          `json:"order_code"`
	CustomerName     string          `json:"customer_name"`
	Items            []tLineItem     `json:"items"`
	TotalItems       int             `json:"total_items"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	PreviousBalance  decimal.Decimal `json:"previous_balance"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	IssuedAt         string          `json:"issued_at"`
}

func (r *tReceipt) Prepare() *tReceipt {
	r.IssuedAt = r.issuedAt.Format(time.RFC3339)
	return r
}

type tOrderByUser struct {
	createdAt   time.Time
	Code        string            `json:"order_code"`
	Items       []tLineItem       `json:"items"`
	TotalItems  int               `json:"total_items"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Status      model.OrderStatus `json:"status"`
	CreatedAt   string            `json:"created_at"`
}

func (o *tOrderByUser) Prepare() *tOrderByUser {
	o.CreatedAt = o.createdAt.Format(time.RFC3339)
	return o
}

type tRecharge struct {
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode string          `json:"payment_mode"`
}

type tRechargeReceipt struct {
	issuedAt         time.Time
	RechargeCode     string               `json:"recharge_code"`
	Amount           decimal.Decimal      `json:"amount"`
	PaymentMode      model.PaymentMode    `json:"payment_mode"`
	Status           model.RechargeStatus `json:"status"`
	PreviousBalance  decimal.Decimal      `json:"previous_balance"`
	RemainingBalance decimal.Decimal      `json:"remaining_balance"`
	IssuedAt         string               `json:"issued_at"`
}

func (r *tRechargeReceipt) Prepare() *tRechargeReceipt {
	r.IssuedAt = r.issuedAt.Format(time.RFC3339)
	return r
}

type tUser struct {
	createdAt time.Time
	ID        string          `json:"id"`
	CollegeID string          `json:"college_id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      model.Role      `json:"role"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt string          `json:"created_at"`
}

func (u *tUser) Prepare() *tUser {
	u.CreatedAt = u.createdAt.Format(time.RFC3339)
	return u
}

type tStats struct {
	TotalUsers     int             `json:"total_users"`
	TotalOrders    int             `json:"total_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalRecharged decimal.Decimal `json:"total_recharged"`
}
