package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	os.Setenv("MONGODB_DATABASE", "bookclub_test")
	os.Setenv("RATE_LIMIT_ENABLED", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.MongoDB.Database != "bookclub_test" {
		t.Fatalf("unexpected mongo config: %+v", cfg.MongoDB)
	}
	if !cfg.RateLimit.Enabled {
		t.Fatalf("rate limit should be enabled: %+v", cfg.RateLimit)
	}
	if cfg.Server.Port == "" {
		t.Fatalf("server port default missing: %+v", cfg.Server)
	}
}
