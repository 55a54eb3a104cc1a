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
)

type ProductService struct {
	collection *mongo.Collection
}

func NewProductService(collection *mongo.Collection) *ProductService {
	return &ProductService{collection: collection}
}

func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	return products, nil
}

func (s *ProductService) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching product: %w", err)
	}
	return &product, nil
}

func (s *ProductService) Insert(ctx context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	if _, err := s.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}
	return nil
}

func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, product *models.Product) error {
	update := buildProductUpdate(product)
	if len(update) == 0 {
		return s.exists(ctx, id)
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.D{{Key: "$set", Value: update}})
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ProductService) exists(ctx context.Context, id primitive.ObjectID) error {
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("fetching product: %w", err)
	}
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func buildProductUpdate(product *models.Product) primitive.D {
	var update primitive.D
	if product.Name != nil {
		update = append(update, bson.E{Key: "name", Value: product.Name})
	}
	if product.Price != nil {
		update = append(update, bson.E{Key: "price", Value: product.Price})
	}
	if product.Image != nil {
		update = append(update, bson.E{Key: "image", Value: product.Image})
	}
	if product.Category != nil {
		update = append(update, bson.E{Key: "category", Value: product.Category})
	}
	return update
}
