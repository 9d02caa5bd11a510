package repository

import "order_confirmation/internal/domain/entities"

// orderItem is the DynamoDB layout shared by the pending and confirmed tables.
// otp_expiry is a Number holding Unix seconds.
type orderItem struct {
	OrderID   string   `dynamodbav:"order_id"`
	Phone     string   `dynamodbav:"phone"`
	Name      string   `dynamodbav:"name"`
	Address   string   `dynamodbav:"address"`
	Details   string   `dynamodbav:"details"`
	Services  []string `dynamodbav:"services"`
	OTP       string   `dynamodbav:"otp"`
	OTPExpiry int64    `dynamodbav:"otp_expiry"`
}

func toOrderItem(o entities.PendingOrder) orderItem {
	services := o.Services
	if services == nil {
		services = []string{}
	}
	return orderItem{
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

func fromOrderItem(it orderItem) entities.PendingOrder {
	services := it.Services
	if services == nil {
		services = []string{}
	}
	return entities.PendingOrder{
		OrderID:   it.OrderID,
		Phone:     it.Phone,
		Name:      it.Name,
		Address:   it.Address,
		Details:   it.Details,
		Services:  services,
		OTP:       it.OTP,
		OTPExpiry: it.OTPExpiry,
	}
}

func fromConfirmedOrderItem(it orderItem) entities.ConfirmedOrder {
	return fromOrderItem(it).Confirm()
}
