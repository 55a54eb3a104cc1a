package routes

import (
	controller "go-canteen-management/controllers"

	"github.com/gin-gonic/gin"
)

func ProductRoutes(router *gin.Engine, product *controller.ProductController) {
	router.GET("/products", product.GetProducts())
	router.POST("/products", product.CreateProduct())
	router.PUT("/products/:id", product.UpdateProduct())
	router.DELETE("/products/:id", product.DeleteProduct())
	router.GET("/api/product/:id", product.GetProduct())
}
