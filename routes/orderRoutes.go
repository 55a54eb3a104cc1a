package routes

import (
	controller "go-canteen-management/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(router *gin.Engine, order *controller.OrderController) {
	router.POST("/api/orders", order.CreateOrder())
	router.GET("/api/orders/:userId", order.GetOrdersByUser())
	router.GET("/api/orders/detail/:orderId", order.GetOrderDetail())
	router.PUT("/api/orders/:orderId", order.UpdateOrder())
}
