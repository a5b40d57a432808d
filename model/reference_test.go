package model

import (
	"testing"

	"github.com/goliatone/go-eaccounting/core"
)

func TestDeliveryMethodDecodeWire(t *testing.T) {
	method := &DeliveryMethod{}
	if err := method.DecodeWire(map[string]any{"Id": "dm-1", "Code": "POST", "Name": "Posten"}); err != nil {
		t.Fatalf("decode delivery method: %v", err)
	}
	if method.Identity() != "dm-1" {
		t.Fatalf("expected id dm-1, got %q", method.Identity())
	}
	if derefString(method.Code) != "POST" || derefString(method.Name) != "Posten" {
		t.Fatalf("expected decoded fields, got %+v", method)
	}
}

func TestDeliveryTermsRoundTrip(t *testing.T) {
	terms := &DeliveryTerms{}
	if err := terms.DecodeWire(map[string]any{"Id": "dt-1", "Code": "FOB", "Name": ""}); err != nil {
		t.Fatalf("decode delivery terms: %v", err)
	}
	if terms.Name != nil {
		t.Fatal("expected empty name to normalize to nil")
	}

	payload, err := terms.EncodeWire()
	if err != nil {
		t.Fatalf("encode delivery terms: %v", err)
	}
	if payload["Id"] != "dt-1" || payload["Code"] != "FOB" {
		t.Fatalf("expected encoded fields, got %v", payload)
	}
	if _, present := payload["Name"]; present {
		t.Fatal("expected unset name to be omitted")
	}
}

func TestReferenceResourcesAreReadOnly(t *testing.T) {
	method := (*DeliveryMethod)(nil).Resource()
	if method.Supports(core.OperationAdd) || method.Supports(core.OperationUpdate) || method.Supports(core.OperationRemove) {
		t.Fatal("expected delivery methods to be read-only")
	}
	terms := (*DeliveryTerms)(nil).Resource()
	if !terms.Supports(core.OperationList) || !terms.Supports(core.OperationGet) {
		t.Fatal("expected list and get support on delivery terms")
	}
}

func TestTermsOfPaymentDecodeWire(t *testing.T) {
	top := &TermsOfPayment{}
	payload := map[string]any{
		"Id":                     "top-1",
		"Name":                   "30 dagar",
		"NameEnglish":            "30 days",
		"NumberOfDays":           30.0,
		"TermsOfPaymentId":       "1",
		"TermsOfPaymentTypeText": "Net",
	}
	if err := top.DecodeWire(payload); err != nil {
		t.Fatalf("decode terms of payment: %v", err)
	}
	if top.Identity() != "top-1" {
		t.Fatalf("expected id top-1, got %q", top.Identity())
	}
	if top.Days == nil || *top.Days != 30 {
		t.Fatalf("expected 30 days, got %v", top.Days)
	}
	if derefString(top.TypeID) != "1" || derefString(top.TypeText) != "Net" {
		t.Fatalf("expected type fields, got %+v", top)
	}

	res := (*TermsOfPayment)(nil).Resource()
	if res.Path != "termsofpayments" {
		t.Fatalf("expected vendor path, got %q", res.Path)
	}
}
