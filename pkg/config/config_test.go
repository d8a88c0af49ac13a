package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}

	if cfg.Backend.Timeout != 15*time.Second {
		t.Fatalf("expected default backend timeout 15s, got %v", cfg.Backend.Timeout)
	}

	if cfg.Shipping.PrimaryCity != "Dhaka" {
		t.Fatalf("unexpected primary city %q", cfg.Shipping.PrimaryCity)
	}
	if !cfg.Shipping.PrimaryCost.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("unexpected primary shipping cost %s", cfg.Shipping.PrimaryCost)
	}
	if cfg.Shipping.PrimaryCost.GreaterThanOrEqual(cfg.Shipping.OtherCost) {
		t.Fatalf("expected primary cost below other cost, got %s >= %s", cfg.Shipping.PrimaryCost, cfg.Shipping.OtherCost)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsRelativeBackendURL(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("SHOPORI_BACKEND_BASE_URL", "/api")

	if _, err := Load(); err == nil {
		t.Fatal("expected relative backend base url to be rejected")
	}
}

func TestDBConfigDSN(t *testing.T) {
	db := DBConfig{Path: "shopori.db", BusyTimeout: 5 * time.Second}
	dsn := db.DSN()
	for _, want := range []string{"file:shopori.db", "_busy_timeout=5000", "_journal_mode=WAL"} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("dsn %q missing %q", dsn, want)
		}
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvDBPath, "shopori.db")
	t.Setenv("SHOPORI_JWT_SECRET", "test-secret")
	t.Setenv("SHOPORI_JWT_ISSUER", "shopori")
	t.Setenv("SHOPORI_BACKEND_BASE_URL", "http://localhost:9000")
}
