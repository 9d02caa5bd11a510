package routes

import (
	"context"
	"os"
	"time"

	_ "order_confirmation/docs" // This will be auto-generated
	"order_confirmation/internal/adapter/http/handlers"
	"order_confirmation/internal/adapter/persistence/repository"
	"order_confirmation/internal/infrastructure/clock"
	"order_confirmation/internal/infrastructure/database"
	"order_confirmation/internal/infrastructure/logger"
	"order_confirmation/internal/infrastructure/messaging"
	"order_confirmation/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

const defaultPort = "8080"

// Run will start the server
func Run() {
	log := logger.FromEnv()
	defer logger.Sync()

	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(log)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	log.Info("starting server", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		log.Fatal("failed to start the application", zap.Error(err))
	}
}

func getRoutes(log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	awsCfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		log.Fatal("failed to load aws config", zap.Error(err))
	}

	ddb := database.ConnectDynamoDB(awsCfg)
	pendingRepo := repository.NewPendingOrderDynamoRepository(ddb)
	confirmedRepo := repository.NewConfirmedOrderDynamoRepository(ddb)
	sender := messaging.NewSNSSender(messaging.ConnectSNS(awsCfg))

	clk := clock.NewSystem()
	intakeUseCase := usecase.NewOrderIntakeUseCase(pendingRepo, sender, clk)
	verificationUseCase := usecase.NewOTPVerificationUseCase(pendingRepo, confirmedRepo, clk)

	registerRoutes(router, intakeUseCase, verificationUseCase)
}

func registerRoutes(r *gin.Engine, intake usecase.IOrderIntakeUseCase, verification usecase.IOTPVerificationUseCase) {
	orderHandler := handlers.NewOrderHandler(intake, verification)
	verificationHandler := handlers.NewOTPVerificationHandler(verification)

	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, verificationHandler)
}

func setMiddlewares(r *gin.Engine, log *zap.Logger) {
	r.Use(requestLogger(log))
	r.Use(gin.Recovery())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

// requestLogger logs one line per request.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	httpLog := log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		httpLog.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}
