package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	_ "epicare_backend/docs" // swag-generated
	"epicare_backend/internal/adapter/http/handlers"
	"epicare_backend/internal/adapter/persistence/inmemory"
	"epicare_backend/internal/adapter/persistence/repository"
	"epicare_backend/internal/infrastructure/database"
	"epicare_backend/internal/infrastructure/payments"
	"epicare_backend/internal/usecase"
	"epicare_backend/internal/usecase/interfaces"

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
	var ledger interfaces.IPaymentLedger
	var outreachUseCase usecase.IOutreachUseCase

	if strings.EqualFold(os.Getenv("LEDGER_BACKEND"), "memory") {
		log.Printf("[startup] using in-memory ledger; payment state is not durable")
		ledger = inmemory.NewPaymentLedger()
	} else {
		ddb := database.ConnectDynamoDB()
		ledger = repository.NewPaymentAttemptDynamoRepository(ddb)
		outreachUseCase = usecase.NewOutreachUseCase(
			repository.NewContactDynamoRepository(ddb),
			repository.NewVolunteerDynamoRepository(ddb),
			repository.NewPartnerApplicationDynamoRepository(ddb),
		)
	}

	var mpesaGateway interfaces.IMpesaGateway
	mpesa, err := payments.NewMpesaGateway(payments.MpesaConfig{
		Env:            getenvDefault("MPESA_ENV", "sandbox"),
		BaseURL:        os.Getenv("MPESA_BASE_URL"),
		ConsumerKey:    os.Getenv("MPESA_CONSUMER_KEY"),
		ConsumerSecret: os.Getenv("MPESA_CONSUMER_SECRET"),
		Shortcode:      os.Getenv("MPESA_SHORTCODE"),
		Passkey:        os.Getenv("MPESA_PASSKEY"),
		CallbackURL:    os.Getenv("MPESA_CALLBACK_URL"),
	})
	if err != nil {
		log.Printf("M-Pesa gateway not configured: %v", err)
	} else {
		mpesaGateway = mpesa
	}

	var paypalGateway interfaces.IPaypalGateway
	paypal, err := payments.NewPaypalGateway(payments.PaypalConfig{
		Env:          getenvDefault("PAYPAL_ENV", "sandbox"),
		BaseURL:      os.Getenv("PAYPAL_BASE_URL"),
		ClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
		ClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
		WebhookID:    os.Getenv("PAYPAL_WEBHOOK_ID"),
		ReturnURL:    getenvDefault("PAYPAL_RETURN_URL", "https://epicare-frontend.vercel.app/payment-success"),
		CancelURL:    getenvDefault("PAYPAL_CANCEL_URL", "https://epicare-frontend.vercel.app/payment-cancel"),
	})
	if err != nil {
		log.Printf("PayPal gateway not configured: %v", err)
	} else {
		paypalGateway = paypal
	}

	paymentUseCase := usecase.NewPaymentUseCase(ledger, mpesaGateway, paypalGateway)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
	if outreachUseCase != nil {
		addOutreachRoutes(v1, handlers.NewOutreachHandler(outreachUseCase))
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
