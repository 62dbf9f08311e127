package canteen

import "errors"

var (
	ErrEmptyOrder         = errors.New("order has no line items")
	ErrInvalidLineItem    = errors.New("line item is not valid")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidPaymentMode = errors.New("unknown payment mode")
	ErrInvalidCategory    = errors.New("unknown menu category")
	ErrEmailNotValid      = errors.New("email is not valid")
	ErrPasswordNotValid   = errors.New("password is not valid")
	ErrCollegeIDNotValid  = errors.New("college id is not valid")
	ErrRoleNotValid       = errors.New("unknown role")
	ErrPasswordNotEquale  = errors.New("password not equal")
	ErrSettlementTimeout  = errors.New("settlement did not complete in time")
)
