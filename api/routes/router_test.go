package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/shopori/cart-service/internal/cart"
	"github.com/shopori/cart-service/internal/catalog"
	checkoutsvc "github.com/shopori/cart-service/internal/checkout"
	pkgauth "github.com/shopori/cart-service/pkg/auth"
	"github.com/shopori/cart-service/pkg/config"
	"github.com/shopori/cart-service/pkg/db/models"
	"github.com/shopori/cart-service/pkg/logger"
)

type noopCart struct{}

func (noopCart) List(context.Context, uuid.UUID) ([]models.CartItem, error) { return nil, nil }
func (noopCart) Add(context.Context, uuid.UUID, cart.AddInput) (*models.CartItem, error) {
	return &models.CartItem{}, nil
}
func (noopCart) AdjustQuantity(context.Context, cart.Key, int) (*models.CartItem, error) {
	return &models.CartItem{}, nil
}
func (noopCart) Remove(context.Context, cart.Key) error { return nil }
func (noopCart) Clear(context.Context, uuid.UUID) error { return nil }

type noopCheckout struct{}

func (noopCheckout) Quote(context.Context, uuid.UUID, string) (*checkoutsvc.Totals, error) {
	return &checkoutsvc.Totals{
		Subtotal:     decimal.Zero,
		ShippingCost: decimal.RequireFromString("120"),
		GrandTotal:   decimal.RequireFromString("120"),
	}, nil
}
func (noopCheckout) Submit(context.Context, uuid.UUID, checkoutsvc.SubmitInput) (*checkoutsvc.OrderReceipt, error) {
	return &checkoutsvc.OrderReceipt{OrderID: "ord-1"}, nil
}
func (noopCheckout) IsFirstOrder(context.Context, uuid.UUID) (bool, error) { return false, nil }

func testRouter(t *testing.T) (http.Handler, config.JWTConfig) {
	t.Helper()

	jwtCfg := config.JWTConfig{Secret: "test-secret", Issuer: "shopori-test", ExpirationMinutes: 60}
	cfg := &config.Config{
		App:  config.AppConfig{Env: "dev", Port: "8080"},
		JWT:  jwtCfg,
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	logg := logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})

	catalogClient, err := catalog.NewClient(config.BackendConfig{BaseURL: "http://backend.test", Timeout: time.Second}, logg)
	if err != nil {
		t.Fatalf("catalog client: %v", err)
	}

	registry := prometheus.NewRegistry()
	router := NewRouter(cfg, logg, nil, registry, catalogClient, noopCart{}, noopCheckout{}, nil)
	return router, jwtCfg
}

func TestRouterHealthIsPublic(t *testing.T) {
	router, _ := testRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouterMetricsIsPublic(t *testing.T) {
	router, _ := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouterAPIRequiresAuth(t *testing.T) {
	router, _ := testRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/cart"},
		{http.MethodPost, "/api/v1/cart/items"},
		{http.MethodGet, "/api/v1/checkout/quote"},
		{http.MethodPost, "/api/v1/checkout"},
		{http.MethodGet, "/api/v1/profile"},
	}
	for _, tc := range paths {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestRouterAuthedCartList(t *testing.T) {
	router, jwtCfg := testRouter(t)

	token, err := pkgauth.MintAccessToken(jwtCfg, time.Now(), pkgauth.AccessTokenPayload{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
