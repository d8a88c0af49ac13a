package checkout

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/shopori/cart-service/pkg/config"
	pkgerrors "github.com/shopori/cart-service/pkg/errors"
	"github.com/shopori/cart-service/pkg/logger"
)

func clientLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
}

func newOrderTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(config.BackendConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, clientLogger())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func samplePayload(userID uuid.UUID) OrderPayload {
	return OrderPayload{
		UserID: userID,
		Items: []OrderItem{
			{ProductID: uuid.New(), Name: "Canvas Sneaker", Quantity: 2, Price: decimal.RequireFromString("900")},
		},
		Subtotal:     decimal.RequireFromString("1800"),
		ShippingCost: decimal.RequireFromString("60"),
		GrandTotal:   decimal.RequireFromString("1860"),
		Status:       StatusSeed,
		Shipping: ShippingForm{
			FullName: "Rahim Uddin",
			Email:    "rahim@example.com",
			Phone:    "01700000000",
			Address:  "12 Lake Road",
			City:     "Dhaka",
			District: "Dhaka",
			Country:  "Bangladesh",
		},
	}
}

func TestCreateOrder(t *testing.T) {
	userID := uuid.New()
	client := newOrderTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/checkout" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload["status"] != StatusSeed {
			t.Fatalf("status %v", payload["status"])
		}
		if payload["createdAt"] != nil {
			t.Fatalf("createdAt must be null, got %v", payload["createdAt"])
		}
		shipping, ok := payload["shipping"].(map[string]any)
		if !ok {
			t.Fatalf("shipping object missing from payload %v", payload)
		}
		if shipping["district"] != "Dhaka" || shipping["country"] != "Bangladesh" {
			t.Fatalf("shipping address %v", shipping)
		}
		json.NewEncoder(w).Encode(OrderReceipt{OrderID: "ord-42"})
	})

	receipt, err := client.CreateOrder(context.Background(), samplePayload(userID))
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if receipt.OrderID != "ord-42" {
		t.Fatalf("unexpected receipt %+v", receipt)
	}
}

func TestCreateOrderBackendRejects(t *testing.T) {
	client := newOrderTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "insufficient stock", http.StatusBadRequest)
	})

	_, err := client.CreateOrder(context.Background(), samplePayload(uuid.New()))
	got := pkgerrors.As(err)
	if got == nil || got.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateOrderBackendDown(t *testing.T) {
	client := newOrderTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.CreateOrder(context.Background(), samplePayload(uuid.New()))
	if got := pkgerrors.As(err); got == nil || got.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestCheckFirstOrder(t *testing.T) {
	userID := uuid.New()
	client := newOrderTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/checkout/check-first-order/"+userID.String() {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(true)
	})

	first, err := client.CheckFirstOrder(context.Background(), userID)
	if err != nil {
		t.Fatalf("CheckFirstOrder: %v", err)
	}
	if !first {
		t.Fatal("expected true")
	}
}

func TestCheckFirstOrderRequiresID(t *testing.T) {
	client := newOrderTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend should not be called")
	})

	_, err := client.CheckFirstOrder(context.Background(), uuid.Nil)
	if got := pkgerrors.As(err); got == nil || got.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
