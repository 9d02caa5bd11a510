package main

import (
	_ "order_confirmation/docs"
	"order_confirmation/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Order Confirmation API
// @version         1.0
// @description     Order intake with SMS one-time-password confirmation, backed by DynamoDB and SNS.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
