package core_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-eaccounting/core"
	"github.com/goliatone/go-eaccounting/devkit"
	goerrors "github.com/goliatone/go-errors"
)

type gadget struct {
	ID   string
	Name string
}

func (*gadget) Resource() core.Resource {
	return core.Resource{
		Name:        "gadget",
		Path:        "gadgets",
		IdentityKey: "Id",
		APIVersion:  "v2",
		Operations: []core.Operation{
			core.OperationList, core.OperationGet, core.OperationAdd,
			core.OperationUpdate, core.OperationRemove,
		},
	}
}

func (g *gadget) Identity() string { return g.ID }

func (g *gadget) EncodeWire() (map[string]any, error) {
	payload := map[string]any{"Name": g.Name}
	if g.ID != "" {
		payload["Id"] = g.ID
	}
	return payload, nil
}

func (g *gadget) DecodeWire(payload map[string]any) error {
	if id, ok := payload["Id"].(string); ok {
		g.ID = id
	}
	if name, ok := payload["Name"].(string); ok {
		g.Name = name
	}
	return nil
}

var _ core.WireModel = (*gadget)(nil)

func newServiceWithTransport(t *testing.T, adapter core.TransportAdapter) *core.Service {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.BaseURL = "https://api.example.com/v2"
	cfg.RequestTimeout = 15 * time.Second
	service, err := core.NewService(cfg, core.WithTransport(adapter))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return service
}

func TestNewServiceBackfillsDefaults(t *testing.T) {
	service, err := core.NewService(core.Config{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if service.Config().BaseURL != core.DefaultBaseURL {
		t.Fatalf("expected default base url, got %q", service.Config().BaseURL)
	}
	if service.Config().OAuth.TokenURL != core.DefaultTokenURL {
		t.Fatalf("expected default token url, got %q", service.Config().OAuth.TokenURL)
	}
}

func TestListDecodesEachItem(t *testing.T) {
	fake := devkit.NewFakeTransportAdapter("fake", devkit.TransportScript{
		Response: core.TransportResponse{
			StatusCode: 200,
			Body:       []byte(`[{"Id": "g-1", "Name": "first"}, {"Id": "g-2", "Name": "second"}]`),
		},
	})
	service := newServiceWithTransport(t, fake)

	items, err := core.List[gadget](context.Background(), service, map[string]string{"page": "1"})
	if err != nil {
		t.Fatalf("list gadgets: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected two items, got %d", len(items))
	}
	if items[0].ID != "g-1" || items[1].Name != "second" {
		t.Fatalf("expected decoded items, got %+v", items)
	}

	requests := fake.Requests()
	if len(requests) != 1 {
		t.Fatalf("expected one request, got %d", len(requests))
	}
	if requests[0].URL != "https://api.example.com/v2/gadgets" {
		t.Fatalf("expected resolved collection url, got %q", requests[0].URL)
	}
	if requests[0].Query["page"] != "1" {
		t.Fatalf("expected filters forwarded, got %v", requests[0].Query)
	}
	if requests[0].Timeout != 15*time.Second {
		t.Fatalf("expected config timeout applied, got %v", requests[0].Timeout)
	}
}

func TestGetDecodesSingleItem(t *testing.T) {
	fake := devkit.NewFakeTransportAdapter("fake", devkit.TransportScript{
		Response: core.TransportResponse{StatusCode: 200, Body: []byte(`{"Id": "g-1", "Name": "first"}`)},
	})
	service := newServiceWithTransport(t, fake)

	item, err := core.Get[gadget](context.Background(), service, "g-1")
	if err != nil {
		t.Fatalf("get gadget: %v", err)
	}
	if item.ID != "g-1" || item.Name != "first" {
		t.Fatalf("expected decoded gadget, got %+v", item)
	}
	if fake.Requests()[0].URL != "https://api.example.com/v2/gadgets/g-1" {
		t.Fatalf("expected resolved item url, got %q", fake.Requests()[0].URL)
	}
}

func TestGetSurfacesVendorFailure(t *testing.T) {
	fake := devkit.NewFakeTransportAdapter("fake", devkit.TransportScript{
		Response: core.TransportResponse{StatusCode: 404, Body: []byte(`{"error": "missing"}`)},
	})
	service := newServiceWithTransport(t, fake)

	_, err := core.Get[gadget](context.Background(), service, "missing")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	var typed *goerrors.Error
	if !errors.As(err, &typed) {
		t.Fatalf("expected structured error, got %T", err)
	}
	if typed.Code != 404 {
		t.Fatalf("expected code 404, got %d", typed.Code)
	}
	if typed.TextCode != core.ErrorRequestFailed {
		t.Fatalf("expected request failed text code, got %q", typed.TextCode)
	}
	if !strings.Contains(typed.Metadata["body"].(string), "missing") {
		t.Fatalf("expected response body in metadata, got %v", typed.Metadata)
	}
}

func TestAddRefreshesModel(t *testing.T) {
	fake := devkit.NewFakeTransportAdapter("fake", devkit.TransportScript{
		Response: core.TransportResponse{StatusCode: 201, Body: []byte(`{"Id": "g-9", "Name": "created"}`)},
	})
	service := newServiceWithTransport(t, fake)

	item := &gadget{Name: "created"}
	if err := service.Add(context.Background(), item); err != nil {
		t.Fatalf("add gadget: %v", err)
	}
	if item.ID != "g-9" {
		t.Fatalf("expected server-assigned id, got %q", item.ID)
	}
	if fake.Requests()[0].Method != "POST" {
		t.Fatalf("expected POST, got %s", fake.Requests()[0].Method)
	}
}

func TestUpdateRefreshesModel(t *testing.T) {
	fake := devkit.NewFakeTransportAdapter("fake", devkit.TransportScript{
		Response: core.TransportResponse{StatusCode: 200, Body: []byte(`{"Id": "g-1", "Name": "renamed"}`)},
	})
	service := newServiceWithTransport(t, fake)

	item := &gadget{ID: "g-1", Name: "old"}
	if err := service.Update(context.Background(), item); err != nil {
		t.Fatalf("update gadget: %v", err)
	}
	if item.Name != "renamed" {
		t.Fatalf("expected refreshed name, got %q", item.Name)
	}
	if fake.Requests()[0].Method != "PUT" {
		t.Fatalf("expected PUT, got %s", fake.Requests()[0].Method)
	}
}

func TestRemoveLeavesModelUntouched(t *testing.T) {
	fake := devkit.NewFakeTransportAdapter("fake", devkit.TransportScript{
		Response: core.TransportResponse{StatusCode: 204},
	})
	service := newServiceWithTransport(t, fake)

	item := &gadget{ID: "g-1", Name: "keep"}
	if err := service.Remove(context.Background(), item); err != nil {
		t.Fatalf("remove gadget: %v", err)
	}
	if item.ID != "g-1" || item.Name != "keep" {
		t.Fatalf("expected untouched local instance, got %+v", item)
	}
	if fake.Requests()[0].Method != "DELETE" {
		t.Fatalf("expected DELETE, got %s", fake.Requests()[0].Method)
	}
}

func TestServiceRequiresTransport(t *testing.T) {
	cfg := core.DefaultConfig()
	service, err := core.NewService(cfg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	_, err = core.Get[gadget](context.Background(), service, "g-1")
	if err == nil {
		t.Fatal("expected error without transport")
	}
	var typed *goerrors.Error
	if !errors.As(err, &typed) {
		t.Fatalf("expected structured error, got %T", err)
	}
	if typed.TextCode != core.ErrorResourceMisconfigured {
		t.Fatalf("expected misconfigured text code, got %q", typed.TextCode)
	}
}

func TestTransportErrorsPassThroughMapper(t *testing.T) {
	fake := devkit.NewFakeTransportAdapter("fake", devkit.TransportScript{
		Err: errors.New("connection reset"),
	})
	service := newServiceWithTransport(t, fake)

	_, err := core.Get[gadget](context.Background(), service, "g-1")
	if err == nil {
		t.Fatal("expected transport error to surface")
	}
	var typed *goerrors.Error
	if !errors.As(err, &typed) {
		t.Fatalf("expected structured error, got %T", err)
	}
	if typed.TextCode == "" {
		t.Fatal("expected mapped error to carry a text code")
	}
}
