package request

import "order_confirmation/internal/usecase"

// OrderRequest is the intake payload. Every field except services is required.
type OrderRequest struct {
	Phone    string   `json:"phone" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Address  string   `json:"address" binding:"required"`
	Details  string   `json:"details" binding:"required"`
	Services []string `json:"services"`
}

func (r OrderRequest) ToInput() usecase.OrderIntakeInput {
	services := r.Services
	if services == nil {
		services = []string{}
	}
	return usecase.OrderIntakeInput{
		Phone:    r.Phone,
		Name:     r.Name,
		Address:  r.Address,
		Details:  r.Details,
		Services: services,
	}
}
