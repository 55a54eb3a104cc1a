package services

import (
	"context"
	"errors"
	"fmt"

	"go-canteen-management/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FoodService performs food-catalog operations against a single Mongo
// collection.
type FoodService struct {
	collection *mongo.Collection
}

func NewFoodService(collection *mongo.Collection) *FoodService {
	return &FoodService{collection: collection}
}

func (s *FoodService) FindAll(ctx context.Context) ([]models.Food, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing foods: %w", err)
	}

	foods := []models.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("decoding foods: %w", err)
	}
	return foods, nil
}

func (s *FoodService) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Food, error) {
	var food models.Food
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching food: %w", err)
	}
	return &food, nil
}

func (s *FoodService) Insert(ctx context.Context, food *models.Food) error {
	food.ID = primitive.NewObjectID()
	if _, err := s.collection.InsertOne(ctx, food); err != nil {
		return fmt.Errorf("inserting food: %w", err)
	}
	return nil
}

// Update applies a $set merge of the fields present in food. Fields left nil
// in the body stay untouched in the stored document.
func (s *FoodService) Update(ctx context.Context, id primitive.ObjectID, food *models.Food) error {
	update := buildFoodUpdate(food)
	if len(update) == 0 {
		// Mongo rejects an empty $set; a body naming no fields reduces to
		// an existence check.
		return s.exists(ctx, id)
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.D{{Key: "$set", Value: update}})
	if err != nil {
		return fmt.Errorf("updating food: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *FoodService) exists(ctx context.Context, id primitive.ObjectID) error {
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("fetching food: %w", err)
	}
	return nil
}

func (s *FoodService) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("deleting food: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func buildFoodUpdate(food *models.Food) primitive.D {
	var update primitive.D
	if food.Name != nil {
		update = append(update, bson.E{Key: "name", Value: food.Name})
	}
	if food.Price != nil {
		update = append(update, bson.E{Key: "price", Value: food.Price})
	}
	if food.FoodImage != nil {
		update = append(update, bson.E{Key: "food_image", Value: food.FoodImage})
	}
	if food.Category != nil {
		update = append(update, bson.E{Key: "category", Value: food.Category})
	}
	if food.Description != nil {
		update = append(update, bson.E{Key: "description", Value: food.Description})
	}
	return update
}
