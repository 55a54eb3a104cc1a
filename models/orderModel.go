package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderItem struct {
	FoodID   string  `json:"foodId,omitempty" bson:"food_id,omitempty"`
	Name     string  `json:"name,omitempty" bson:"name,omitempty"`
	Price    float64 `json:"price,omitempty" bson:"price,omitempty"`
	Quantity int     `json:"quantity,omitempty" bson:"quantity,omitempty"`
}

// Order carries the user's cart at checkout time. CreatedAt is stamped
// server-side at insertion and is the sort key for per-user listings.
type Order struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID          *string            `json:"userId,omitempty" bson:"user_id,omitempty" validate:"required"`
	Items           []OrderItem        `json:"items,omitempty" bson:"items,omitempty"`
	TotalAmount     *float64           `json:"totalAmount,omitempty" bson:"total_amount,omitempty"`
	Status          *string            `json:"status,omitempty" bson:"status,omitempty"`
	ShippingAddress *string            `json:"shippingAddress,omitempty" bson:"shipping_address,omitempty"`
	CreatedAt       time.Time          `json:"createdAt,omitempty" bson:"created_at,omitempty"`
}
