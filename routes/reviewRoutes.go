package routes

import (
	controller "go-canteen-management/controllers"

	"github.com/gin-gonic/gin"
)

func ReviewRoutes(router *gin.Engine, review *controller.ReviewController) {
	router.POST("/api/reviews", review.CreateReview())
	router.GET("/api/reviews/:foodId", review.GetReviewsByFood())
	router.DELETE("/api/reviews/:reviewId", review.DeleteReview())
}
