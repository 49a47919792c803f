package config_test

import (
	"testing"

	"github.com/foodipy/foodipy/config"
)

// No config/app.json or .env exists in the test working directory, so
// every getter answers with its built-in default.

func TestDefaults(t *testing.T) {
	if got := config.StoreDriver(); got != "file" {
		t.Errorf("StoreDriver() = %q, want file", got)
	}
	if got := config.StoreRoot(); got != "data" {
		t.Errorf("StoreRoot() = %q, want data", got)
	}
	if got := config.DatabaseDriver(); got != "sqlite" {
		t.Errorf("DatabaseDriver() = %q, want sqlite", got)
	}
	if got := config.DatabaseDSN(); got != "foodipy.db" {
		t.Errorf("DatabaseDSN() = %q, want foodipy.db", got)
	}
	if got := config.AppEnv(); got != "local" {
		t.Errorf("AppEnv() = %q, want local", got)
	}
	if config.AppKey() == "" {
		t.Error("AppKey() must never be empty")
	}
}

func TestGetFallback(t *testing.T) {
	if got := config.Get("NO_SUCH_KEY", "fallback"); got != "fallback" {
		t.Errorf("Get() = %q, want fallback", got)
	}
	if got := config.Get("STORE_DRIVER", "x"); got != "file" {
		t.Errorf("Get(STORE_DRIVER) = %q, want file", got)
	}
}
