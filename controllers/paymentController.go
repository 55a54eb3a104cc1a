package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"go-canteen-management/models"
	"go-canteen-management/services"

	"github.com/gin-gonic/gin"
)

// PaymentProvider creates a payment intent and returns its id and the
// client-side confirmation secret. Configured reports whether a credential
// was supplied at startup; an unconfigured provider fails every call.
type PaymentProvider interface {
	Configured() bool
	CreateIntent(ctx context.Context, amount int64, userID string, itemCount int) (string, string, error)
}

type PaymentStore interface {
	Insert(ctx context.Context, payment *models.Payment) error
}

type PaymentController struct {
	provider PaymentProvider
	store    PaymentStore
}

func NewPaymentController(provider PaymentProvider, store PaymentStore) *PaymentController {
	return &PaymentController{provider: provider, store: store}
}

// CreatePaymentIntent requests an intent from the provider and persists a
// pending payment record. One provider call and one insert per invocation,
// with no idempotency key: duplicate requests create duplicate intents.
func (pc *PaymentController) CreatePaymentIntent() gin.HandlerFunc {
	return func(c *gin.Context) {
		// The configuration error applies to every call on this route,
		// regardless of the request body.
		if !pc.provider.Configured() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": services.ErrProviderUnconfigured.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var req models.PaymentIntentRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := validate.Struct(req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		intentID, clientSecret, err := pc.provider.CreateIntent(ctx, *req.Amount, *req.UserID, len(req.Items))
		if errors.Is(err, services.ErrProviderUnconfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": services.ErrProviderUnconfigured.Error()})
			return
		}
		if err != nil {
			slog.Error("payment intent creation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		payment := models.Payment{
			UserID:          *req.UserID,
			PaymentIntentID: intentID,
			Amount:          *req.Amount,
			Currency:        models.PaymentCurrency,
			Status:          models.PaymentStatusPending,
			Items:           req.Items,
			ShippingAddress: req.ShippingAddress,
		}
		if err := pc.store.Insert(ctx, &payment); err != nil {
			slog.Error("payment record insert failed",
				slog.String("payment_intent_id", intentID),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"paymentIntentId": intentID,
			"clientSecret":    clientSecret,
		})
	}
}
