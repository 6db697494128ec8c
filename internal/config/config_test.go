package config

import (
	"strings"
	"testing"
	"time"
)

// setBaseEnv sets the minimum environment for a successful Load.
func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/vetcepi?sslmode=disable")
}

func TestLoad_DefaultsFromEnv(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.App.Env != "development" {
		t.Errorf("App.Env: got %q, want %q", cfg.App.Env, "development")
	}
	if cfg.App.IsProduction() {
		t.Error("IsProduction should be false by default")
	}
	if cfg.Scanner.Cooldown != 2*time.Second {
		t.Errorf("Scanner.Cooldown: got %v, want 2s", cfg.Scanner.Cooldown)
	}
	if cfg.Database.MaxConns != 25 {
		t.Errorf("Database.MaxConns: got %d, want 25", cfg.Database.MaxConns)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log defaults: got %q/%q, want info/json", cfg.Log.Level, cfg.Log.Format)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SCANNER_COOLDOWN", "500ms")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("ENCRYPTION_KEY", strings.Repeat("ab", 32))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.Scanner.Cooldown != 500*time.Millisecond {
		t.Errorf("Scanner.Cooldown: got %v, want 500ms", cfg.Scanner.Cooldown)
	}
	if !cfg.App.IsProduction() {
		t.Error("IsProduction should be case-insensitive")
	}
}

func TestValidate_ProductionRequiresKey(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing ENCRYPTION_KEY in production")
	}
}

func TestValidate_ProductionRejectsShortKey(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("ENCRYPTION_KEY", "deadbeef")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for short key in production")
	}
}

func TestValidate_ProductionRejectsNonHexKey(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("ENCRYPTION_KEY", strings.Repeat("zz", 32))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-hex key in production")
	}
}

func TestValidate_DevelopmentAllowsAnyKey(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ENCRYPTION_KEY", "just-a-passphrase")

	if _, err := Load(); err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
}

func TestValidate_CooldownMustBePositive(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SCANNER_COOLDOWN", "0s")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for zero cooldown")
	}
	if !strings.Contains(err.Error(), "cooldown") {
		t.Errorf("error should mention cooldown, got: %v", err)
	}
}
