package request

// VerifyOTPRequest is the verification payload.
//
// Fields are not tagged as required: a missing order_id must produce its own
// response, distinct from the generic invalid-payload one.
type VerifyOTPRequest struct {
	OrderID string `json:"order_id"`
	OTP     string `json:"otp"`
}
