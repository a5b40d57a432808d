package core

import (
	"context"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("expected default base url, got %q", cfg.BaseURL)
	}
	if cfg.OAuth.AuthURL != DefaultAuthURL {
		t.Fatalf("expected default auth url, got %q", cfg.OAuth.AuthURL)
	}
	if cfg.OAuth.TokenURL != DefaultTokenURL {
		t.Fatalf("expected default token url, got %q", cfg.OAuth.TokenURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestConfigValidateRequiresBaseURL(t *testing.T) {
	if err := (Config{}).Validate(); err == nil {
		t.Fatal("expected error for missing base url")
	}
}

func TestCfgxConfigProviderAppliesRawValues(t *testing.T) {
	provider := NewCfgxConfigProvider(staticRawConfigLoader{Values: map[string]any{
		"base_url": "https://sandbox.example.com/v2",
		"oauth": map[string]any{
			"client_id": "client-1",
		},
	}})

	cfg, err := provider.Load(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BaseURL != "https://sandbox.example.com/v2" {
		t.Fatalf("expected raw base url override, got %q", cfg.BaseURL)
	}
	if cfg.OAuth.ClientID != "client-1" {
		t.Fatalf("expected raw oauth client id, got %q", cfg.OAuth.ClientID)
	}
	if cfg.OAuth.TokenURL != DefaultTokenURL {
		t.Fatalf("expected defaults to backfill token url, got %q", cfg.OAuth.TokenURL)
	}
}

func TestGoOptionsResolverRuntimeWins(t *testing.T) {
	defaults := DefaultConfig()
	loaded := DefaultConfig()
	loaded.BaseURL = "https://config.example.com/v2"
	loaded.RequestTimeout = 10 * time.Second
	runtime := Config{BaseURL: "https://runtime.example.com/v2"}

	resolved, err := (GoOptionsResolver{}).Resolve(defaults, loaded, runtime)
	if err != nil {
		t.Fatalf("resolve config: %v", err)
	}
	if resolved.BaseURL != "https://runtime.example.com/v2" {
		t.Fatalf("expected runtime layer to win, got %q", resolved.BaseURL)
	}
	if resolved.RequestTimeout != 10*time.Second {
		t.Fatalf("expected config layer timeout to survive, got %v", resolved.RequestTimeout)
	}
}
