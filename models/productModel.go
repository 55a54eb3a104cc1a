package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      *string            `json:"name,omitempty" bson:"name,omitempty" validate:"required,min=1,max=100"`
	Price     *float64           `json:"price,omitempty" bson:"price,omitempty" validate:"required"`
	Image     *string            `json:"image,omitempty" bson:"image,omitempty"`
	Category  *string            `json:"category,omitempty" bson:"category,omitempty"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"created_at,omitempty"`
}
