package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthController exposes liveness and storage health separately from the
// resource routes.
type HealthController struct {
	client *mongo.Client
}

func NewHealthController(client *mongo.Client) *HealthController {
	return &HealthController{client: client}
}

func (hc *HealthController) Live() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "Canteen API is running")
	}
}

func (hc *HealthController) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := hc.client.Ping(ctx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
