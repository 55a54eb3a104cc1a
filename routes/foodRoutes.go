package routes

import (
	controller "go-canteen-management/controllers"

	"github.com/gin-gonic/gin"
)

func FoodRoutes(router *gin.Engine, food *controller.FoodController) {
	router.GET("/foods", food.GetFoods())
	router.POST("/foods", food.CreateFood())
	router.PUT("/foods/:id", food.UpdateFood())
	router.DELETE("/foods/:id", food.DeleteFood())
	router.GET("/api/food/:id", food.GetFood())
}
