package routes

import (
	controller "go-canteen-management/controllers"

	"github.com/gin-gonic/gin"
)

func HealthRoutes(router *gin.Engine, health *controller.HealthController) {
	router.GET("/", health.Live())
	router.GET("/health", health.Health())
}
