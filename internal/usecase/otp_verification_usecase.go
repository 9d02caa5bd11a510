package usecase

import (
	"context"
	"errors"
	"strings"

	"order_confirmation/internal/domain/entities"
	"order_confirmation/internal/infrastructure/clock"
	"order_confirmation/internal/infrastructure/logger"
	"order_confirmation/internal/usecase/interfaces"

	"go.uber.org/zap"
)

//go:generate mockgen -source=otp_verification_usecase.go -destination=../adapter/http/handlers/mocks/mock_otp_verification_usecase.go -package=mocks

// IOTPVerificationUseCase checks a submitted OTP against a pending order and, on a
// match, promotes the order to confirmed storage.
//
// Outcomes of VerifyOTP:
//   - ErrOrderIDRequired / ErrOTPRequired: input missing
//   - ErrOrderNotFound: no pending record (never created, or already confirmed)
//   - ErrOTPExpired: pending record left in place
//   - ErrIncorrectOTP: pending record left in place, retries allowed until expiry
//   - nil: order confirmed
type IOTPVerificationUseCase interface {
	VerifyOTP(ctx context.Context, orderID string, otp string) (entities.ConfirmedOrder, error)
	GetConfirmedByID(ctx context.Context, orderID string) (entities.ConfirmedOrder, error)
}

type OTPVerificationUseCase struct {
	pendingRepo   interfaces.IPendingOrderRepository
	confirmedRepo interfaces.IConfirmedOrderRepository
	clock         clock.Clock
	log           *zap.Logger
}

var _ IOTPVerificationUseCase = (*OTPVerificationUseCase)(nil)

func NewOTPVerificationUseCase(pendingRepo interfaces.IPendingOrderRepository, confirmedRepo interfaces.IConfirmedOrderRepository, clk clock.Clock) *OTPVerificationUseCase {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &OTPVerificationUseCase{
		pendingRepo:   pendingRepo,
		confirmedRepo: confirmedRepo,
		clock:         clk,
		log:           logger.Named("order.usecase"),
	}
}

func (u *OTPVerificationUseCase) VerifyOTP(ctx context.Context, orderID string, otp string) (entities.ConfirmedOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ConfirmedOrder{}, ErrOrderIDRequired
	}
	if otp == "" {
		return entities.ConfirmedOrder{}, ErrOTPRequired
	}

	pending, err := u.pendingRepo.GetByID(ctx, orderID)
	if err != nil {
		u.log.Error("pending order lookup failed", zap.String("order_id", orderID), zap.Error(err))
		return entities.ConfirmedOrder{}, err
	}
	if pending.OrderID == "" {
		u.log.Info("verify: order not found", zap.String("order_id", orderID))
		return entities.ConfirmedOrder{}, ErrOrderNotFound
	}

	if pending.IsExpired(u.clock.Now()) {
		u.log.Info("verify: otp expired", zap.String("order_id", orderID), zap.Int64("otp_expiry", pending.OTPExpiry))
		return entities.ConfirmedOrder{}, ErrOTPExpired
	}

	if !pending.MatchesOTP(otp) {
		u.log.Info("verify: incorrect otp", zap.String("order_id", orderID))
		return entities.ConfirmedOrder{}, ErrIncorrectOTP
	}

	confirmed, err := u.confirmedRepo.Promote(ctx, pending)
	if err != nil {
		if errors.Is(err, interfaces.ErrPromotionConflict) {
			u.log.Warn("verify: order promoted by a concurrent request", zap.String("order_id", orderID))
			return entities.ConfirmedOrder{}, ErrOrderNotFound
		}
		u.log.Error("order promotion failed", zap.String("order_id", orderID), zap.Error(err))
		return entities.ConfirmedOrder{}, err
	}

	u.log.Info("order confirmed", zap.String("order_id", confirmed.OrderID))
	return confirmed, nil
}

func (u *OTPVerificationUseCase) GetConfirmedByID(ctx context.Context, orderID string) (entities.ConfirmedOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ConfirmedOrder{}, ErrOrderIDRequired
	}

	o, err := u.confirmedRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.ConfirmedOrder{}, err
	}
	if o.OrderID == "" {
		return entities.ConfirmedOrder{}, ErrOrderNotFound
	}
	return o, nil
}
