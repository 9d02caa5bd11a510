package handlers

import (
	"errors"
	"net/http"

	request "order_confirmation/internal/adapter/http/dto/request"
	"order_confirmation/internal/infrastructure/logger"
	"order_confirmation/internal/usecase"
	"order_confirmation/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	MsgOTPVerified     = "OTP verified successfully!"
	MsgOrderIDRequired = "order_id is required in the request."
	MsgOTPRequired     = "otp is required in the request."
	MsgOrderNotFound   = "Order with the provided order_id not found."
	MsgOTPExpired      = "OTP has expired."
	MsgIncorrectOTP    = "Incorrect OTP."
)

// verificationOutcome is a plain-string response of the verification route.
type verificationOutcome struct {
	status  int
	message string
	cors    bool
}

// OTPVerificationHandler handles OTP submissions.
type OTPVerificationHandler struct {
	usecase usecase.IOTPVerificationUseCase
	log     *zap.Logger
}

func NewOTPVerificationHandler(uc usecase.IOTPVerificationUseCase) *OTPVerificationHandler {
	return &OTPVerificationHandler{usecase: uc, log: logger.Named("order.handler")}
}

// VerifyOTP godoc
// @Summary      Verify an order OTP
// @Description  Confirms the pending order when the OTP matches and has not expired.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        verification  body      request.VerifyOTPRequest  true  "Order ID and OTP"
// @Success      200           {string}  string  "OTP verified successfully!"
// @Failure      400           {string}  string
// @Failure      404           {string}  string
// @Failure      500           {object}  pkg.HTTPError
// @Router       /orders/verify [post]
func (h *OTPVerificationHandler) VerifyOTP(c *gin.Context) {
	var payload request.VerifyOTPRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Debug("verify: invalid payload", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	_, err := h.usecase.VerifyOTP(c.Request.Context(), payload.OrderID, payload.OTP)
	outcome, ok := mapVerificationResult(err)
	if !ok {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if outcome.cors {
		setCORSHeaders(c)
	}
	c.JSON(outcome.status, outcome.message)
}

// mapVerificationResult returns false for errors outside the verification taxonomy.
func mapVerificationResult(err error) (verificationOutcome, bool) {
	switch {
	case err == nil:
		return verificationOutcome{status: http.StatusOK, message: MsgOTPVerified, cors: true}, true
	case errors.Is(err, usecase.ErrOrderIDRequired):
		return verificationOutcome{status: http.StatusBadRequest, message: MsgOrderIDRequired}, true
	case errors.Is(err, usecase.ErrOTPRequired):
		return verificationOutcome{status: http.StatusBadRequest, message: MsgOTPRequired}, true
	case errors.Is(err, usecase.ErrOrderNotFound):
		return verificationOutcome{status: http.StatusNotFound, message: MsgOrderNotFound}, true
	case errors.Is(err, usecase.ErrOTPExpired):
		return verificationOutcome{status: http.StatusBadRequest, message: MsgOTPExpired}, true
	case errors.Is(err, usecase.ErrIncorrectOTP):
		return verificationOutcome{status: http.StatusBadRequest, message: MsgIncorrectOTP, cors: true}, true
	default:
		return verificationOutcome{}, false
	}
}
