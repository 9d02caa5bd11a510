package routes

import (
	"order_confirmation/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, verificationHandler *handlers.OTPVerificationHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.SubmitOrder)
		orders.OPTIONS("", handlers.Preflight)
		orders.POST("/verify", verificationHandler.VerifyOTP)
		orders.OPTIONS("/verify", handlers.Preflight)
		orders.GET("/:order_id", orderHandler.GetConfirmedOrder)
	}
}
