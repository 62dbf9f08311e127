package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

type User struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CollegeID    string `gorm:"unique"`
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	RFIDCardID   *string
	Role         Role            `gorm:"default:student"`
	Balance      decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
	ID           uuid.UUID       `gorm:"type:uuid;primarykey"`
}

type MenuCategory string

const (
	CategoryBreakfast MenuCategory = "breakfast"
	CategoryLunch     MenuCategory = "lunch"
	CategoryBreaktime MenuCategory = "breaktime"
	CategoryDinner    MenuCategory = "dinner"
)

type MenuItem struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Category  MenuCategory    `gorm:"index"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2)"`
	ImageURL  string
	Available bool `gorm:"default:true"`
	ID        uint `gorm:"primarykey"`
}

type OrderStatus string

const (
	OrderStatePending   OrderStatus = "pending"
	OrderStateCompleted OrderStatus = "completed"
	OrderStateCancelled OrderStatus = "cancelled"
)

type Order struct {
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Code             string `gorm:"unique"`
	User             User
	Items            []OrderItem `gorm:"foreignKey:OrderID"`
	Status           OrderStatus `gorm:"default:completed"`
	TotalItems       int
	TotalAmount      decimal.Decimal `gorm:"type:numeric(12,2)"`
	PreviousBalance  decimal.Decimal `gorm:"type:numeric(12,2)"`
	RemainingBalance decimal.Decimal `gorm:"type:numeric(12,2)"`
	ID               uuid.UUID       `gorm:"type:uuid;primarykey"`
	UserID           uuid.UUID       `gorm:"type:uuid;index"`
}

type OrderItem struct {
	Name       string
	Price      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity   int
	ID         uint      `gorm:"primarykey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uint
}

type PaymentMode string

const (
	PaymentModeUPI        PaymentMode = "UPI"
	PaymentModeNetBanking PaymentMode = "NetBanking"
	PaymentModeCard       PaymentMode = "Card"
	PaymentModeWallet     PaymentMode = "Wallet"
)

type RechargeStatus string

const (
	RechargeStatePending RechargeStatus = "pending"
	RechargeStateSuccess RechargeStatus = "success"
	RechargeStateFailed  RechargeStatus = "failed"
)

type RechargeTransaction struct {
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Code             string `gorm:"unique"`
	User             User
	PaymentMode      PaymentMode
	Status           RechargeStatus  `gorm:"default:success"`
	Amount           decimal.Decimal `gorm:"type:numeric(12,2)"`
	PreviousBalance  decimal.Decimal `gorm:"type:numeric(12,2)"`
	RemainingBalance decimal.Decimal `gorm:"type:numeric(12,2)"`
	ID               uuid.UUID       `gorm:"type:uuid;primarykey"`
	UserID           uuid.UUID       `gorm:"type:uuid;index"`
}
