package main

import (
	_ "epicare_backend/docs"
	"epicare_backend/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Epicare Donations API
// @version         1.0
// @description     Donation and volunteer-management backend: M-Pesa STK push and PayPal payments with asynchronous callback reconciliation, plus outreach form endpoints.

// @contact.name   API Support
// @contact.email  support@epicare.org

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
