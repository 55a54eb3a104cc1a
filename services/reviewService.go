package services

import (
	"context"
	"fmt"
	"time"

	"go-canteen-management/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewService struct {
	collection *mongo.Collection
}

func NewReviewService(collection *mongo.Collection) *ReviewService {
	return &ReviewService{collection: collection}
}

func (s *ReviewService) Insert(ctx context.Context, review *models.Review) error {
	review.ID = primitive.NewObjectID()
	review.CreatedAt = time.Now()
	if _, err := s.collection.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("inserting review: %w", err)
	}
	return nil
}

// FindByFood returns a food's reviews newest first. The foodId is matched as
// a plain string, never parsed as an ObjectID.
func (s *ReviewService) FindByFood(ctx context.Context, foodID string) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{"food_id": foodID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decoding reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
