package main

import (
	"log/slog"
	"os"
	"time"

	"go-canteen-management/config"
	controller "go-canteen-management/controllers"
	"go-canteen-management/database"
	"go-canteen-management/middleware"
	"go-canteen-management/routes"
	"go-canteen-management/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		slog.Error("mongodb connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			slog.Error("mongodb disconnect failed", slog.String("error", err.Error()))
		}
	}()
	slog.Info("connected to mongodb", slog.String("database", cfg.DatabaseName))

	if cfg.StripeSecretKey == "" {
		slog.Warn("STRIPE_SECRET_KEY not set; payment-intent route will report a configuration error")
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	foods := services.NewFoodService(database.OpenCollection(client, cfg.DatabaseName, "foods"))
	products := services.NewProductService(database.OpenCollection(client, cfg.DatabaseName, "products"))
	orders := services.NewOrderService(database.OpenCollection(client, cfg.DatabaseName, "orders"))
	reviews := services.NewReviewService(database.OpenCollection(client, cfg.DatabaseName, "reviews"))
	payments := services.NewPaymentService(database.OpenCollection(client, cfg.DatabaseName, "payments"))
	provider := services.NewStripeProvider(cfg.StripeSecretKey)

	routes.HealthRoutes(router, controller.NewHealthController(client))
	routes.FoodRoutes(router, controller.NewFoodController(foods))
	routes.ProductRoutes(router, controller.NewProductController(products))
	routes.OrderRoutes(router, controller.NewOrderController(orders))
	routes.ReviewRoutes(router, controller.NewReviewController(reviews))
	routes.PaymentRoutes(router, controller.NewPaymentController(provider, payments))

	slog.Info("server starting", slog.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
