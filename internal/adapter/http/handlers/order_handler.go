package handlers

import (
	"errors"
	"net/http"

	request "order_confirmation/internal/adapter/http/dto/request"
	response "order_confirmation/internal/adapter/http/dto/response"
	"order_confirmation/internal/infrastructure/logger"
	"order_confirmation/internal/usecase"
	"order_confirmation/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles order intake and confirmed-order lookups.
type OrderHandler struct {
	intake usecase.IOrderIntakeUseCase
	orders usecase.IOTPVerificationUseCase
	log    *zap.Logger
}

func NewOrderHandler(intake usecase.IOrderIntakeUseCase, orders usecase.IOTPVerificationUseCase) *OrderHandler {
	return &OrderHandler{intake: intake, orders: orders, log: logger.Named("order.handler")}
}

// SubmitOrder godoc
// @Summary      Submit an order
// @Description  Stores the order as pending and texts a one-time passcode to the given phone.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.OrderRequest  true  "Order details"
// @Success      200    {object}  response.OrderSubmittedResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Debug("submit: invalid payload", zap.Error(err))
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.intake.SubmitOrder(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	setCORSHeaders(c)
	c.JSON(http.StatusOK, response.FromPendingOrder(order))
}

// GetConfirmedOrder godoc
// @Summary      Get a confirmed order
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  response.ConfirmedOrderResponse
// @Failure      404       {object}  pkg.HTTPError
// @Failure      500       {object}  pkg.HTTPError
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) GetConfirmedOrder(c *gin.Context) {
	order, err := h.orders.GetConfirmedByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	setCORSHeaders(c)
	c.JSON(http.StatusOK, response.FromConfirmedOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderPayload):
		return errInvalidOrderPayload
	case errors.Is(err, usecase.ErrOrderIDRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
