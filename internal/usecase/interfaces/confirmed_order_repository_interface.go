package interfaces

import (
	"context"
	"errors"
	"order_confirmation/internal/domain/entities"
)

//go:generate mockgen -source=confirmed_order_repository_interface.go -destination=mocks/mock_confirmed_order_repository_interface.go -package=mock_interfaces

// ErrPromotionConflict is returned by Promote when the pending record is gone or the
// confirmed record already exists, i.e. another request promoted the order first.
var ErrPromotionConflict = errors.New("order promotion conflict")

// IConfirmedOrderRepository abstracts persistence for confirmed orders.
//
// Promote moves a pending order into the confirmed table and removes the pending copy
// in a single conditional transaction.
type IConfirmedOrderRepository interface {
	Promote(ctx context.Context, pending entities.PendingOrder) (entities.ConfirmedOrder, error)
	GetByID(ctx context.Context, orderID string) (entities.ConfirmedOrder, error)
}
