package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentCurrency      = "usd"
	PaymentStatusPending = "pending"
)

// Payment is the persisted record of a created payment intent. It is
// write-only from the API's perspective: nothing reads it back, and its
// status stays pending until an out-of-band process settles it.
type Payment struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID          string             `json:"userId" bson:"user_id"`
	PaymentIntentID string             `json:"paymentIntentId" bson:"payment_intent_id"`
	Amount          int64              `json:"amount" bson:"amount"`
	Currency        string             `json:"currency" bson:"currency"`
	Status          string             `json:"status" bson:"status"`
	Items           []OrderItem        `json:"items,omitempty" bson:"items,omitempty"`
	ShippingAddress *string            `json:"shippingAddress,omitempty" bson:"shipping_address,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"created_at"`
}

// PaymentIntentRequest is the boundary schema for the create-payment-intent
// route. Amount is in the smallest currency unit.
type PaymentIntentRequest struct {
	Amount          *int64      `json:"amount" validate:"required,gt=0"`
	UserID          *string     `json:"userId" validate:"required"`
	Items           []OrderItem `json:"items"`
	ShippingAddress *string     `json:"shippingAddress"`
}
