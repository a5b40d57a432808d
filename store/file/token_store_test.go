package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goliatone/go-eaccounting/core"
)

func TestNewRequiresPath(t *testing.T) {
	if _, err := New("  ", nil); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestLoadMissingFile(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "token.json"), nil)
	if err != nil {
		t.Fatalf("expected store, got error %v", err)
	}

	token, found, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("expected missing file to load cleanly, got %v", err)
	}
	if found {
		t.Fatal("expected no token for missing file")
	}
	if !token.IsZero() {
		t.Fatalf("expected zero token, got %+v", token)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	store, err := New(path, nil)
	if err != nil {
		t.Fatalf("expected store, got error %v", err)
	}

	expiry := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	saved := core.Token{
		TokenType:    "Bearer",
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		Expiry:       &expiry,
		Scopes:       []string{"ea:api"},
	}
	if err := store.Save(context.Background(), saved); err != nil {
		t.Fatalf("expected save to succeed, got %v", err)
	}

	loaded, found, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if !found {
		t.Fatal("expected persisted token to be found")
	}
	if loaded.AccessToken != saved.AccessToken {
		t.Fatalf("expected access token %q, got %q", saved.AccessToken, loaded.AccessToken)
	}
	if loaded.RefreshToken != saved.RefreshToken {
		t.Fatalf("expected refresh token %q, got %q", saved.RefreshToken, loaded.RefreshToken)
	}
	if loaded.Expiry == nil || !loaded.Expiry.Equal(expiry) {
		t.Fatalf("expected expiry %v, got %v", expiry, loaded.Expiry)
	}
	if len(loaded.Scopes) != 1 || loaded.Scopes[0] != "ea:api" {
		t.Fatalf("expected scopes to round-trip, got %v", loaded.Scopes)
	}
}

func TestSaveOverwritesPreviousToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store, err := New(path, nil)
	if err != nil {
		t.Fatalf("expected store, got error %v", err)
	}

	first := core.Token{TokenType: "Bearer", AccessToken: "access-1"}
	second := core.Token{TokenType: "Bearer", AccessToken: "access-2"}
	if err := store.Save(context.Background(), first); err != nil {
		t.Fatalf("expected first save to succeed, got %v", err)
	}
	if err := store.Save(context.Background(), second); err != nil {
		t.Fatalf("expected second save to succeed, got %v", err)
	}

	loaded, found, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if !found {
		t.Fatal("expected token to be found")
	}
	if loaded.AccessToken != "access-2" {
		t.Fatalf("expected latest token, got %q", loaded.AccessToken)
	}
}

func TestSaveRejectsZeroToken(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "token.json"), nil)
	if err != nil {
		t.Fatalf("expected store, got error %v", err)
	}
	if err := store.Save(context.Background(), core.Token{}); err == nil {
		t.Fatal("expected error for zero token")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	if err := os.WriteFile(path, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("expected fixture file, got %v", err)
	}
	store, err := New(path, nil)
	if err != nil {
		t.Fatalf("expected store, got error %v", err)
	}
	_, found, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("expected empty file to load cleanly, got %v", err)
	}
	if found {
		t.Fatal("expected no token for empty file")
	}
}
