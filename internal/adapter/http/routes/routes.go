package routes

import (
	"log"
	"strconv"

	_ "reservas_xpto/docs" // This will be auto-generated
	"reservas_xpto/internal/adapter/http/handlers"
	repository2 "reservas_xpto/internal/adapter/persistence/repository"
	appconfig "reservas_xpto/internal/infrastructure/config"
	"reservas_xpto/internal/infrastructure/database"
	"reservas_xpto/internal/infrastructure/payments"
	"reservas_xpto/internal/usecase"
	"reservas_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg appconfig.App) {
	ddb := database.ConnectDynamoDB()

	bookingStore := repository2.NewBookingDynamoStore(ddb, cfg.BookingsTable)

	// The gateway is optional. Without it bookings are still created, only
	// downgraded to deposit_status=none.
	var checkoutGateway interfaces.ICheckoutGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		checkoutGateway = mpGateway
	}

	bookingUseCase := usecase.NewBookingCheckoutUseCase(bookingStore, checkoutGateway, usecase.DepositConfig{
		AmountCents:    cfg.DepositAmountCents,
		Currency:       cfg.DepositCurrency,
		MaxAmountCents: cfg.DepositMaxAmountCents,
	})

	bookingHandler := handlers.NewBookingHandler(bookingUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, bookingHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
