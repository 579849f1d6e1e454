package routes

import (
	"epicare_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments   = "/payments"
	PathContacts   = "/contacts"
	PathVolunteers = "/volunteers"
	PathPartners   = "/partners"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/mpesa/stkpush", paymentHandler.MpesaStkPush)
		payments.POST("/mpesa/callback", paymentHandler.MpesaCallback)
		payments.POST("/paypal/order", paymentHandler.PaypalCreateOrder)
		payments.POST("/paypal/webhook", paymentHandler.PaypalWebhook)
		payments.POST("/paypal/log", paymentHandler.PaypalLog)
		payments.GET("/:id", paymentHandler.GetPayment)
	}
}

func addOutreachRoutes(rg *gin.RouterGroup, outreachHandler *handlers.OutreachHandler) {
	contacts := rg.Group(PathContacts)
	{
		contacts.POST("", outreachHandler.CreateContact)
		contacts.GET("", outreachHandler.ListContacts)
	}

	volunteers := rg.Group(PathVolunteers)
	{
		volunteers.POST("", outreachHandler.CreateVolunteer)
		volunteers.GET("", outreachHandler.ListVolunteers)
	}

	partners := rg.Group(PathPartners)
	{
		partners.POST("", outreachHandler.CreatePartnerApplication)
		partners.GET("", outreachHandler.ListPartnerApplications)
	}
}
