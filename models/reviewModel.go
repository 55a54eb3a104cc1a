package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FoodID    *string            `json:"foodId,omitempty" bson:"food_id,omitempty" validate:"required"`
	UserID    *string            `json:"userId,omitempty" bson:"user_id,omitempty"`
	Rating    *int               `json:"rating,omitempty" bson:"rating,omitempty" validate:"required,min=1,max=5"`
	Comment   *string            `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"created_at,omitempty"`
}
