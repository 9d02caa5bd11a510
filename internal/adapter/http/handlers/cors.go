package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowOrigin  = "*"
	corsAllowHeaders = "Content-Type"
	corsAllowMethods = "OPTIONS,POST,GET"
)

// setCORSHeaders writes the headers browsers need to call the order routes from any origin.
func setCORSHeaders(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", corsAllowOrigin)
	c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
	c.Header("Access-Control-Allow-Methods", corsAllowMethods)
}

// Preflight answers CORS preflight requests on the order routes.
func Preflight(c *gin.Context) {
	setCORSHeaders(c)
	c.Status(http.StatusNoContent)
}
