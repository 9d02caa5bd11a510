package response

import "order_confirmation/internal/domain/entities"

const OrderSubmittedMessage = "Form submitted successfully and OTP sent!"

// OrderSubmittedResponse is returned by the intake route.
type OrderSubmittedResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

func FromPendingOrder(o entities.PendingOrder) OrderSubmittedResponse {
	return OrderSubmittedResponse{
		Message: OrderSubmittedMessage,
		OrderID: o.OrderID,
	}
}

// ConfirmedOrderResponse omits the OTP fields.
type ConfirmedOrderResponse struct {
	OrderID  string   `json:"order_id"`
	Phone    string   `json:"phone"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Details  string   `json:"details"`
	Services []string `json:"services"`
}

func FromConfirmedOrder(o entities.ConfirmedOrder) ConfirmedOrderResponse {
	services := o.Services
	if services == nil {
		services = []string{}
	}
	return ConfirmedOrderResponse{
		OrderID:  o.OrderID,
		Phone:    o.Phone,
		Name:     o.Name,
		Address:  o.Address,
		Details:  o.Details,
		Services: services,
	}
}
