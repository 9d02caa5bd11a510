package usecase

import "errors"

var (
	ErrInvalidOrderPayload = errors.New("invalid order payload")
	ErrOrderIDRequired     = errors.New("order_id is required")
	ErrOTPRequired         = errors.New("otp is required")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOTPExpired          = errors.New("otp expired")
	ErrIncorrectOTP        = errors.New("incorrect otp")
)
