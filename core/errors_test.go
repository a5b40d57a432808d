package core

import (
	"errors"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestNewRequestFailedError(t *testing.T) {
	err := NewRequestFailedError("customer", OperationGet, 404, []byte(`{"error":"missing"}`))
	typed := assertTextCode(t, err, ErrorRequestFailed)
	if typed.Code != 404 {
		t.Fatalf("expected code 404, got %d", typed.Code)
	}
	if typed.Category != goerrors.CategoryExternal {
		t.Fatalf("expected external category, got %v", typed.Category)
	}
	if typed.Metadata["status_code"] != 404 {
		t.Fatalf("expected status_code metadata, got %v", typed.Metadata)
	}
	if !strings.Contains(typed.Metadata["body"].(string), "missing") {
		t.Fatalf("expected body metadata, got %v", typed.Metadata["body"])
	}
	if !strings.Contains(err.Error(), "returned status 404") {
		t.Fatalf("expected status in message, got %q", err.Error())
	}
}

func TestNewUnsupportedOperationError(t *testing.T) {
	err := NewUnsupportedOperationError("customer", OperationList)
	typed := assertTextCode(t, err, ErrorOperationUnsupported)
	if typed.Category != goerrors.CategoryOperation {
		t.Fatalf("expected operation category, got %v", typed.Category)
	}
	if typed.Metadata["resource"] != "customer" {
		t.Fatalf("expected resource metadata, got %v", typed.Metadata)
	}
}

func TestNewDecodeErrorWrapsSource(t *testing.T) {
	source := errors.New("bad timestamp")
	err := NewDecodeError(source, "customer")
	assertTextCode(t, err, ErrorDecodeFailed)
	if !errors.Is(err, source) {
		t.Fatal("expected source error to be wrapped")
	}
}

func TestDefaultErrorMapperPassesStructuredErrors(t *testing.T) {
	original := NewBadInputError("id is required")
	mapped := defaultErrorMapper(original)
	if mapped == nil {
		t.Fatal("expected mapped error")
	}
	if mapped.TextCode != ErrorBadInput {
		t.Fatalf("expected original text code preserved, got %q", mapped.TextCode)
	}
}

func TestDefaultErrorMapperWrapsPlainErrors(t *testing.T) {
	mapped := defaultErrorMapper(errors.New("boom"))
	if mapped == nil {
		t.Fatal("expected mapped error")
	}
	if mapped.TextCode == "" {
		t.Fatal("expected a text code on wrapped plain errors")
	}
}
