package routes

import (
	controller "go-canteen-management/controllers"

	"github.com/gin-gonic/gin"
)

func PaymentRoutes(router *gin.Engine, payment *controller.PaymentController) {
	router.POST("/api/create-payment-intent", payment.CreatePaymentIntent())
}
