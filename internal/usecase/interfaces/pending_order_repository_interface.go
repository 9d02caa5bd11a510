package interfaces

import (
	"context"
	"order_confirmation/internal/domain/entities"
)

//go:generate mockgen -source=pending_order_repository_interface.go -destination=mocks/mock_pending_order_repository_interface.go -package=mock_interfaces

// IPendingOrderRepository abstracts DynamoDB persistence for orders awaiting OTP confirmation.
//
// GetByID returns a zero-value order (empty OrderID) and a nil error when nothing is stored.
type IPendingOrderRepository interface {
	Create(ctx context.Context, o entities.PendingOrder) (entities.PendingOrder, error)
	GetByID(ctx context.Context, orderID string) (entities.PendingOrder, error)
}
