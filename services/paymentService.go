package services

import (
	"context"
	"fmt"
	"time"

	"go-canteen-management/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentService persists payment records. The records are write-only:
// nothing in this API reads them back.
type PaymentService struct {
	collection *mongo.Collection
}

func NewPaymentService(collection *mongo.Collection) *PaymentService {
	return &PaymentService{collection: collection}
}

func (s *PaymentService) Insert(ctx context.Context, payment *models.Payment) error {
	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()
	if _, err := s.collection.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("inserting payment: %w", err)
	}
	return nil
}
