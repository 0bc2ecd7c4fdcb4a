package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/waqaskhan1437/wishesu-sub006/docs" // This will be auto-generated
	"github.com/waqaskhan1437/wishesu-sub006/internal/adapter/http/handlers"
	"github.com/waqaskhan1437/wishesu-sub006/internal/adapter/persistence/repository"
	"github.com/waqaskhan1437/wishesu-sub006/internal/infrastructure/database"
	"github.com/waqaskhan1437/wishesu-sub006/internal/infrastructure/notifications"
	"github.com/waqaskhan1437/wishesu-sub006/internal/infrastructure/payments"
	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase"
	"github.com/waqaskhan1437/wishesu-sub006/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	sessionRepo := repository.NewCheckoutSessionDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)
	productRepo := repository.NewProductDynamoRepository(ddb)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb)

	var provider interfaces.IPaymentProvider
	whop, err := payments.NewWhopGateway(os.Getenv("WHOP_API_KEY"))
	if err != nil {
		log.Printf("Payment provider not configured: %v", err)
	} else {
		provider = whop
	}

	notifier := notifications.NewWebhookNotifier(os.Getenv("ORDER_WEBHOOK_URL"))

	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + strconv.Itoa(PORT)
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(sessionRepo, productRepo, settingsRepo, provider, usecase.CheckoutOptions{
		AllowClientAmount: strings.EqualFold(os.Getenv("ALLOW_CLIENT_AMOUNT"), "true"),
		RedirectBaseURL:   baseURL,
	})
	webhookUseCase := usecase.NewWebhookUseCase(sessionRepo, orderRepo, provider, notifier, baseURL)
	reaperUseCase := usecase.NewReaperUseCase(sessionRepo, provider)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)
	cleanupHandler := handlers.NewCleanupHandler(reaperUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler, webhookHandler, cleanupHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
