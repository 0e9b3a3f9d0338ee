package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config failed: %v", err)
	}

	if cfg.HTTPTimeout() != 30*time.Second {
		t.Fatalf("expected 30s http timeout, got %v", cfg.HTTPTimeout())
	}
	if cfg.LoadUsers != 10 {
		t.Fatalf("expected 10 users, got %d", cfg.LoadUsers)
	}
	if cfg.LoadScenario != "accounts" {
		t.Fatalf("expected accounts scenario, got %q", cfg.LoadScenario)
	}
	if cfg.LoadCronSchedule != "" {
		t.Fatalf("expected empty cron schedule, got %q", cfg.LoadCronSchedule)
	}
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("GATEWAY_API_BASE_URL", "http://gateway.internal:8003/")
	t.Setenv("LOAD_USERS", "25")
	t.Setenv("LOAD_SCENARIO", "Operations")
	t.Setenv("LOAD_WAIT_MIN_MS", "100")
	t.Setenv("LOAD_WAIT_MAX_MS", "400")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config failed: %v", err)
	}

	if cfg.GatewayAPIBaseURL != "http://gateway.internal:8003/" {
		t.Fatalf("unexpected base url %q", cfg.GatewayAPIBaseURL)
	}
	if cfg.LoadUsers != 25 {
		t.Fatalf("expected 25 users, got %d", cfg.LoadUsers)
	}
	if cfg.LoadScenario != "operations" {
		t.Fatalf("expected scenario normalized to lowercase, got %q", cfg.LoadScenario)
	}
	if cfg.WaitMin() != 100*time.Millisecond || cfg.WaitMax() != 400*time.Millisecond {
		t.Fatalf("unexpected waits: %v / %v", cfg.WaitMin(), cfg.WaitMax())
	}
}

func TestLoadConfigRejectsInvertedWaitBounds(t *testing.T) {
	t.Setenv("LOAD_WAIT_MIN_MS", "500")
	t.Setenv("LOAD_WAIT_MAX_MS", "100")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for WAIT_MAX < WAIT_MIN")
	}
}
