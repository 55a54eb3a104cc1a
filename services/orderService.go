package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-canteen-management/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderService struct {
	collection *mongo.Collection
}

func NewOrderService(collection *mongo.Collection) *OrderService {
	return &OrderService{collection: collection}
}

// Insert stamps the creation time server-side; a client-supplied createdAt is
// never trusted.
func (s *OrderService) Insert(ctx context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now()
	if _, err := s.collection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}
	return nil
}

// FindByUser returns the user's orders newest first. An unknown user yields
// an empty slice, not an error.
func (s *OrderService) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decoding orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching order: %w", err)
	}
	return &order, nil
}

func (s *OrderService) Update(ctx context.Context, id primitive.ObjectID, order *models.Order) error {
	update := buildOrderUpdate(order)
	if len(update) == 0 {
		return s.exists(ctx, id)
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.D{{Key: "$set", Value: update}})
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *OrderService) exists(ctx context.Context, id primitive.ObjectID) error {
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("fetching order: %w", err)
	}
	return nil
}

func buildOrderUpdate(order *models.Order) primitive.D {
	var update primitive.D
	if order.UserID != nil {
		update = append(update, bson.E{Key: "user_id", Value: order.UserID})
	}
	if order.Items != nil {
		update = append(update, bson.E{Key: "items", Value: order.Items})
	}
	if order.TotalAmount != nil {
		update = append(update, bson.E{Key: "total_amount", Value: order.TotalAmount})
	}
	if order.Status != nil {
		update = append(update, bson.E{Key: "status", Value: order.Status})
	}
	if order.ShippingAddress != nil {
		update = append(update, bson.E{Key: "shipping_address", Value: order.ShippingAddress})
	}
	return update
}
