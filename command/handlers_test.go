package command

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-eaccounting/core"
	"github.com/goliatone/go-eaccounting/model"
)

type fakeMutatingService struct {
	addCalls    int
	updateCalls int
	removeCalls int
	assignID    string
	failWith    error
}

func (s *fakeMutatingService) Add(_ context.Context, m core.WireModel) error {
	s.addCalls++
	if s.failWith != nil {
		return s.failWith
	}
	if s.assignID != "" {
		return m.DecodeWire(map[string]any{"Id": s.assignID})
	}
	return nil
}

func (s *fakeMutatingService) Update(context.Context, core.WireModel) error {
	s.updateCalls++
	return s.failWith
}

func (s *fakeMutatingService) Remove(context.Context, core.WireModel) error {
	s.removeCalls++
	return s.failWith
}

func namedCustomer(t *testing.T, name string) *model.Customer {
	t.Helper()
	customer := model.NewCustomer()
	customer.SetName(name)
	return customer
}

func TestCreateCustomerMessageValidate(t *testing.T) {
	if err := (CreateCustomerMessage{}).Validate(); err == nil {
		t.Fatal("expected error for nil customer")
	}
	if err := (CreateCustomerMessage{Customer: model.NewCustomer()}).Validate(); err == nil {
		t.Fatal("expected error for unnamed customer")
	}
	if err := (CreateCustomerMessage{Customer: namedCustomer(t, "ACME Oy")}).Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
}

func TestUpdateCustomerMessageValidate(t *testing.T) {
	if err := (UpdateCustomerMessage{}).Validate(); err == nil {
		t.Fatal("expected error for nil customer")
	}

	customer := namedCustomer(t, "ACME Oy")
	if err := (UpdateCustomerMessage{Customer: customer}).Validate(); err == nil {
		t.Fatal("expected error for customer without id")
	}

	if err := customer.DecodeWire(map[string]any{"Id": "c-1"}); err != nil {
		t.Fatalf("decode fixture customer: %v", err)
	}
	if err := (UpdateCustomerMessage{Customer: customer}).Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
}

func TestCreateCustomerCommandExecute(t *testing.T) {
	service := &fakeMutatingService{assignID: "c-42"}
	cmd := NewCreateCustomerCommand(service)

	customer := namedCustomer(t, "ACME Oy")
	if err := cmd.Execute(context.Background(), CreateCustomerMessage{Customer: customer}); err != nil {
		t.Fatalf("expected execute to succeed, got %v", err)
	}
	if service.addCalls != 1 {
		t.Fatalf("expected one add call, got %d", service.addCalls)
	}
	if customer.Identity() != "c-42" {
		t.Fatalf("expected refreshed customer id, got %q", customer.Identity())
	}
}

func TestCreateCustomerCommandPropagatesServiceError(t *testing.T) {
	boom := errors.New("boom")
	cmd := NewCreateCustomerCommand(&fakeMutatingService{failWith: boom})
	err := cmd.Execute(context.Background(), CreateCustomerMessage{Customer: namedCustomer(t, "ACME Oy")})
	if !errors.Is(err, boom) {
		t.Fatalf("expected service error to propagate, got %v", err)
	}
}

func TestCommandsRequireService(t *testing.T) {
	if err := (&CreateCustomerCommand{}).Execute(context.Background(), CreateCustomerMessage{}); err == nil {
		t.Fatal("expected dependency error for create")
	}
	if err := (&UpdateCustomerCommand{}).Execute(context.Background(), UpdateCustomerMessage{}); err == nil {
		t.Fatal("expected dependency error for update")
	}
	if err := (&RemoveCustomerCommand{}).Execute(context.Background(), RemoveCustomerMessage{}); err == nil {
		t.Fatal("expected dependency error for remove")
	}
}

func TestRemoveCustomerCommandExecute(t *testing.T) {
	service := &fakeMutatingService{}
	cmd := NewRemoveCustomerCommand(service)
	if err := cmd.Execute(context.Background(), RemoveCustomerMessage{Customer: namedCustomer(t, "ACME Oy")}); err != nil {
		t.Fatalf("expected execute to succeed, got %v", err)
	}
	if service.removeCalls != 1 {
		t.Fatalf("expected one remove call, got %d", service.removeCalls)
	}
}
