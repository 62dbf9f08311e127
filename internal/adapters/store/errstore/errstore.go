package errstore

import "errors"

var (
	ErrNotFoundData       = errors.New("data not found")
	ErrInsufficientFunds  = errors.New("insufficient funds on balance")
	ErrEmailNotUnique     = errors.New("email already registered")
	ErrCollegeIDNotUnique = errors.New("college id already registered")
	ErrCodeNotUnique      = errors.New("transaction code already exists")
)
