package usecase

import (
	"context"
	"strings"

	"order_confirmation/internal/domain/entities"
	"order_confirmation/internal/infrastructure/clock"
	"order_confirmation/internal/infrastructure/logger"
	"order_confirmation/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderIntakeInput carries the order details submitted by the client.
type OrderIntakeInput struct {
	Phone    string
	Name     string
	Address  string
	Details  string
	Services []string
}

//go:generate mockgen -source=order_intake_usecase.go -destination=../adapter/http/handlers/mocks/mock_order_intake_usecase.go -package=mocks

// IOrderIntakeUseCase accepts an order, stores it as pending and sends the OTP.
type IOrderIntakeUseCase interface {
	SubmitOrder(ctx context.Context, in OrderIntakeInput) (entities.PendingOrder, error)
}

type OrderIntakeUseCase struct {
	repo   interfaces.IPendingOrderRepository
	sender interfaces.IOTPSender
	clock  clock.Clock
	newOTP func() (string, error)
	log    *zap.Logger
}

var _ IOrderIntakeUseCase = (*OrderIntakeUseCase)(nil)

func NewOrderIntakeUseCase(repo interfaces.IPendingOrderRepository, sender interfaces.IOTPSender, clk clock.Clock) *OrderIntakeUseCase {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &OrderIntakeUseCase{
		repo:   repo,
		sender: sender,
		clock:  clk,
		newOTP: entities.GenerateOTP,
		log:    logger.Named("order.usecase"),
	}
}

// SubmitOrder persists the pending order before dispatching the OTP. A dispatch
// failure is returned as is and the pending record is left in place.
func (u *OrderIntakeUseCase) SubmitOrder(ctx context.Context, in OrderIntakeInput) (entities.PendingOrder, error) {
	if isBlank(in.Phone) || isBlank(in.Name) || isBlank(in.Address) || isBlank(in.Details) {
		u.log.Debug("submit rejected: missing required field")
		return entities.PendingOrder{}, ErrInvalidOrderPayload
	}

	otp, err := u.newOTP()
	if err != nil {
		u.log.Error("otp generation failed", zap.Error(err))
		return entities.PendingOrder{}, err
	}

	services := in.Services
	if services == nil {
		services = []string{}
	}

	now := u.clock.Now()
	order := entities.PendingOrder{
		OrderID:   uuid.NewString(),
		Phone:     in.Phone,
		Name:      in.Name,
		Address:   in.Address,
		Details:   in.Details,
		Services:  services,
		OTP:       otp,
		OTPExpiry: entities.OTPExpiryFrom(now.Unix()),
	}

	created, err := u.repo.Create(ctx, order)
	if err != nil {
		u.log.Error("pending order create failed", zap.String("order_id", order.OrderID), zap.Error(err))
		return entities.PendingOrder{}, err
	}

	if err := u.sender.SendOTP(ctx, created.Phone, "Your OTP is: "+created.OTP); err != nil {
		u.log.Error("otp dispatch failed", zap.String("order_id", created.OrderID), zap.Error(err))
		return entities.PendingOrder{}, err
	}

	u.log.Info("order submitted",
		zap.String("order_id", created.OrderID),
		zap.Int64("otp_expiry", created.OTPExpiry),
		zap.Int("services", len(created.Services)),
	)
	return created, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
