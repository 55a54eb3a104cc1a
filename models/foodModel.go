package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a catalog entry. Pointer fields distinguish "absent" from
// "zero" so the same struct binds both create and partial-update bodies.
type Food struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        *string            `json:"name,omitempty" bson:"name,omitempty" validate:"required,min=1,max=100"`
	Price       *float64           `json:"price,omitempty" bson:"price,omitempty" validate:"required"`
	FoodImage   *string            `json:"foodImage,omitempty" bson:"food_image,omitempty"`
	Category    *string            `json:"category,omitempty" bson:"category,omitempty"`
	Description *string            `json:"description,omitempty" bson:"description,omitempty"`
}
