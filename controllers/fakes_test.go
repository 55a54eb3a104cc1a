package controller_test

import (
	"context"
	"sort"
	"time"

	"go-canteen-management/models"
	"go-canteen-management/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeFoodStore mirrors the $set merge semantics of the Mongo-backed store.
type fakeFoodStore struct {
	foods map[primitive.ObjectID]models.Food
}

func newFakeFoodStore() *fakeFoodStore {
	return &fakeFoodStore{foods: map[primitive.ObjectID]models.Food{}}
}

func (s *fakeFoodStore) FindAll(ctx context.Context) ([]models.Food, error) {
	all := []models.Food{}
	for _, f := range s.foods {
		all = append(all, f)
	}
	return all, nil
}

func (s *fakeFoodStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Food, error) {
	f, ok := s.foods[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return &f, nil
}

func (s *fakeFoodStore) Insert(ctx context.Context, food *models.Food) error {
	food.ID = primitive.NewObjectID()
	s.foods[food.ID] = *food
	return nil
}

func (s *fakeFoodStore) Update(ctx context.Context, id primitive.ObjectID, food *models.Food) error {
	existing, ok := s.foods[id]
	if !ok {
		return services.ErrNotFound
	}
	if food.Name != nil {
		existing.Name = food.Name
	}
	if food.Price != nil {
		existing.Price = food.Price
	}
	if food.FoodImage != nil {
		existing.FoodImage = food.FoodImage
	}
	if food.Category != nil {
		existing.Category = food.Category
	}
	if food.Description != nil {
		existing.Description = food.Description
	}
	s.foods[id] = existing
	return nil
}

func (s *fakeFoodStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := s.foods[id]; !ok {
		return services.ErrNotFound
	}
	delete(s.foods, id)
	return nil
}

type fakeOrderStore struct {
	orders map[primitive.ObjectID]models.Order
	clock  time.Time
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		orders: map[primitive.ObjectID]models.Order{},
		clock:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *fakeOrderStore) Insert(ctx context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	s.clock = s.clock.Add(time.Second)
	order.CreatedAt = s.clock
	s.orders[order.ID] = *order
	return nil
}

func (s *fakeOrderStore) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	matched := []models.Order{}
	for _, o := range s.orders {
		if o.UserID != nil && *o.UserID == userID {
			matched = append(matched, o)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (s *fakeOrderStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return &o, nil
}

func (s *fakeOrderStore) Update(ctx context.Context, id primitive.ObjectID, order *models.Order) error {
	existing, ok := s.orders[id]
	if !ok {
		return services.ErrNotFound
	}
	if order.UserID != nil {
		existing.UserID = order.UserID
	}
	if order.Items != nil {
		existing.Items = order.Items
	}
	if order.TotalAmount != nil {
		existing.TotalAmount = order.TotalAmount
	}
	if order.Status != nil {
		existing.Status = order.Status
	}
	if order.ShippingAddress != nil {
		existing.ShippingAddress = order.ShippingAddress
	}
	s.orders[id] = existing
	return nil
}

type fakeReviewStore struct {
	reviews map[primitive.ObjectID]models.Review
	clock   time.Time
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{
		reviews: map[primitive.ObjectID]models.Review{},
		clock:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *fakeReviewStore) Insert(ctx context.Context, review *models.Review) error {
	review.ID = primitive.NewObjectID()
	s.clock = s.clock.Add(time.Second)
	review.CreatedAt = s.clock
	s.reviews[review.ID] = *review
	return nil
}

func (s *fakeReviewStore) FindByFood(ctx context.Context, foodID string) ([]models.Review, error) {
	matched := []models.Review{}
	for _, r := range s.reviews {
		if r.FoodID != nil && *r.FoodID == foodID {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (s *fakeReviewStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := s.reviews[id]; !ok {
		return services.ErrNotFound
	}
	delete(s.reviews, id)
	return nil
}

type fakePaymentProvider struct {
	unconfigured bool
	intentID     string
	clientSecret string
	calls        int
}

func (p *fakePaymentProvider) Configured() bool {
	return !p.unconfigured
}

func (p *fakePaymentProvider) CreateIntent(ctx context.Context, amount int64, userID string, itemCount int) (string, string, error) {
	if p.unconfigured {
		return "", "", services.ErrProviderUnconfigured
	}
	p.calls++
	return p.intentID, p.clientSecret, nil
}

type fakePaymentStore struct {
	payments []models.Payment
}

func (s *fakePaymentStore) Insert(ctx context.Context, payment *models.Payment) error {
	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()
	s.payments = append(s.payments, *payment)
	return nil
}
