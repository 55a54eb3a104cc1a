package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	controller "go-canteen-management/controllers"
	"go-canteen-management/models"
	"go-canteen-management/routes"
	"go-canteen-management/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProductStore struct {
	products map[primitive.ObjectID]models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[primitive.ObjectID]models.Product{}}
}

func (s *fakeProductStore) FindAll(ctx context.Context) ([]models.Product, error) {
	all := []models.Product{}
	for _, p := range s.products {
		all = append(all, p)
	}
	return all, nil
}

func (s *fakeProductStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return &p, nil
}

func (s *fakeProductStore) Insert(ctx context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	s.products[product.ID] = *product
	return nil
}

func (s *fakeProductStore) Update(ctx context.Context, id primitive.ObjectID, product *models.Product) error {
	existing, ok := s.products[id]
	if !ok {
		return services.ErrNotFound
	}
	if product.Name != nil {
		existing.Name = product.Name
	}
	if product.Price != nil {
		existing.Price = product.Price
	}
	if product.Image != nil {
		existing.Image = product.Image
	}
	if product.Category != nil {
		existing.Category = product.Category
	}
	s.products[id] = existing
	return nil
}

func (s *fakeProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := s.products[id]; !ok {
		return services.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func newProductRouter(store controller.ProductStore) *gin.Engine {
	router := gin.New()
	routes.ProductRoutes(router, controller.NewProductController(store))
	return router
}

func TestProductLifecycle(t *testing.T) {
	store := newFakeProductStore()
	router := newProductRouter(store)

	w := doRequest(t, router, http.MethodPost, "/products", `{"name":"Bottled Water","price":5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create: status = %d, body = %s", w.Code, w.Body.String())
	}
	var created models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.ID.IsZero() {
		t.Fatal("create: no generated id")
	}

	w = doRequest(t, router, http.MethodGet, "/api/product/"+created.ID.Hex(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: status = %d", w.Code)
	}

	w = doRequest(t, router, http.MethodPut, "/products/"+created.ID.Hex(), `{"price":7}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d", w.Code)
	}
	stored := store.products[created.ID]
	if stored.Price == nil || *stored.Price != 7 {
		t.Errorf("price = %v, want 7", stored.Price)
	}
	if stored.Name == nil || *stored.Name != "Bottled Water" {
		t.Errorf("name = %v, want unchanged", stored.Name)
	}

	w = doRequest(t, router, http.MethodDelete, "/products/"+created.ID.Hex(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", w.Code)
	}
	w = doRequest(t, router, http.MethodGet, "/api/product/"+created.ID.Hex(), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: status = %d, want 404", w.Code)
	}
}

func TestCreateProductValidation(t *testing.T) {
	router := newProductRouter(newFakeProductStore())

	w := doRequest(t, router, http.MethodPost, "/products", `{"name":"Bottled Water"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
