package interfaces

import "context"

//go:generate mockgen -source=otp_sender_interface.go -destination=mocks/mock_otp_sender_interface.go -package=mock_interfaces

// IOTPSender abstracts the text-message channel used to deliver OTPs (e.g. AWS SNS).
type IOTPSender interface {
	SendOTP(ctx context.Context, phone string, message string) error
}
