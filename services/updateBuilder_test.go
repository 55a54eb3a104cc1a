package services

import (
	"testing"

	"go-canteen-management/models"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestBuildFoodUpdateOnlyNamedFields(t *testing.T) {
	tests := []struct {
		name string
		food models.Food
		want []string
	}{
		{"empty body", models.Food{}, nil},
		{"name only", models.Food{Name: strPtr("Tea")}, []string{"name"}},
		{"price only", models.Food{Price: floatPtr(20)}, []string{"price"}},
		{
			"all fields",
			models.Food{
				Name:        strPtr("Tea"),
				Price:       floatPtr(20),
				FoodImage:   strPtr("tea.png"),
				Category:    strPtr("drinks"),
				Description: strPtr("hot"),
			},
			[]string{"name", "price", "food_image", "category", "description"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update := buildFoodUpdate(&tt.food)
			if len(update) != len(tt.want) {
				t.Fatalf("got %d fields, want %d: %v", len(update), len(tt.want), update)
			}
			for i, e := range update {
				if e.Key != tt.want[i] {
					t.Errorf("field %d = %q, want %q", i, e.Key, tt.want[i])
				}
			}
		})
	}
}

func TestBuildOrderUpdateOnlyNamedFields(t *testing.T) {
	// A body naming no fields must build an empty update so Update can
	// short-circuit instead of sending an empty $set.
	if update := buildOrderUpdate(&models.Order{}); len(update) != 0 {
		t.Fatalf("empty body built %d fields: %v", len(update), update)
	}

	status := "confirmed"
	order := models.Order{Status: &status}

	update := buildOrderUpdate(&order)
	if len(update) != 1 {
		t.Fatalf("got %d fields, want 1: %v", len(update), update)
	}
	if update[0].Key != "status" {
		t.Errorf("field = %q, want status", update[0].Key)
	}

	// created_at must never be client-settable through an update.
	full := models.Order{
		UserID:          strPtr("u1"),
		Items:           []models.OrderItem{{FoodID: "f1", Quantity: 2}},
		TotalAmount:     floatPtr(40),
		Status:          &status,
		ShippingAddress: strPtr("somewhere"),
	}
	for _, e := range buildOrderUpdate(&full) {
		if e.Key == "created_at" {
			t.Error("created_at leaked into the update document")
		}
	}
}

func TestBuildProductUpdateOnlyNamedFields(t *testing.T) {
	if update := buildProductUpdate(&models.Product{}); len(update) != 0 {
		t.Fatalf("empty body built %d fields: %v", len(update), update)
	}

	product := models.Product{Price: floatPtr(15), Image: strPtr("p.png")}

	update := buildProductUpdate(&product)
	if len(update) != 2 {
		t.Fatalf("got %d fields, want 2: %v", len(update), update)
	}
	if update[0].Key != "price" || update[1].Key != "image" {
		t.Errorf("fields = %v, want [price image]", update)
	}
}
