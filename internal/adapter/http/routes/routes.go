package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "mechmarket/docs" // This will be auto-generated
	"mechmarket/internal/adapter/http/handlers"
	"mechmarket/internal/adapter/notification"
	repository2 "mechmarket/internal/adapter/persistence/repository"
	"mechmarket/internal/config"
	"mechmarket/internal/infrastructure/database"
	"mechmarket/internal/infrastructure/events"
	"mechmarket/internal/infrastructure/payments"
	"mechmarket/internal/usecase"
	"mechmarket/internal/usecase/interfaces"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(cfg.HTTPAddr)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	bidRepo := repository2.NewBidDynamoRepository(ddb)
	changeOrderRepo := repository2.NewChangeOrderDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	stripeGateway, err := payments.NewStripeGateway(cfg.StripeSecretKey)
	if err != nil {
		log.Printf("Stripe gateway not configured: %v", err)
	} else {
		paymentGateway = stripeGateway
	}

	var publisher interfaces.IEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewProducer(cfg.KafkaBrokers, cfg.NotificationsTopic)
	}

	notificationStore := notification.NewRedisStore(notification.New(cfg.RedisAddr))

	changeOrderUseCase := usecase.NewChangeOrderUseCase(changeOrderRepo, jobRepo, paymentGateway, publisher)
	jobUseCase := usecase.NewJobUseCase(jobRepo, changeOrderUseCase, publisher)
	bidUseCase := usecase.NewBidUseCase(bidRepo, jobRepo, publisher)
	notificationUseCase := usecase.NewNotificationUseCase(notificationStore)

	jobHandler := handlers.NewJobHandler(jobUseCase)
	bidHandler := handlers.NewBidHandler(bidUseCase)
	changeOrderHandler := handlers.NewChangeOrderHandler(changeOrderUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, jobHandler, bidHandler, changeOrderHandler, notificationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
