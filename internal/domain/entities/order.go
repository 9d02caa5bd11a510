package entities

import "time"

// OTPValidity is the fixed window during which a generated OTP can confirm an order.
const OTPValidity = 300 * time.Second

// PendingOrder is an order awaiting OTP confirmation.
//
// Storage model (DynamoDB):
//   - Table: PreliminaryOrders
//   - PK: order_id
//
// OTPExpiry is an absolute Unix timestamp (seconds).
type PendingOrder struct {
	OrderID   string   `json:"order_id"`
	Phone     string   `json:"phone"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Details   string   `json:"details"`
	Services  []string `json:"services"`
	OTP       string   `json:"otp"`
	OTPExpiry int64    `json:"otp_expiry"`
}

// IsExpired reports whether the OTP can no longer be used at instant now.
// The expiry second itself is still valid.
func (o PendingOrder) IsExpired(now time.Time) bool {
	return now.Unix() > o.OTPExpiry
}

// MatchesOTP compares a submitted code against the stored one.
func (o PendingOrder) MatchesOTP(otp string) bool {
	return o.OTP == otp
}

// Confirm produces the confirmed copy of the order. The record is carried verbatim.
func (o PendingOrder) Confirm() ConfirmedOrder {
	services := make([]string, len(o.Services))
	copy(services, o.Services)
	return ConfirmedOrder{
		OrderID:   o.OrderID,
		Phone:     o.Phone,
		Name:      o.Name,
		Address:   o.Address,
		Details:   o.Details,
		Services:  services,
		OTP:       o.OTP,
		OTPExpiry: o.OTPExpiry,
	}
}

// ConfirmedOrder is an order whose OTP was verified.
//
// Storage model (DynamoDB):
//   - Table: ConfirmedOrders
//   - PK: order_id
//
// OTP fields are retained as written at intake but are never checked again.
type ConfirmedOrder struct {
	OrderID   string   `json:"order_id"`
	Phone     string   `json:"phone"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Details   string   `json:"details"`
	Services  []string `json:"services"`
	OTP       string   `json:"otp"`
	OTPExpiry int64    `json:"otp_expiry"`
}
