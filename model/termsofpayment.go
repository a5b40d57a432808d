package model

import (
	"github.com/goliatone/go-eaccounting/core"
)

// TermsOfPayment describes a payment-terms preset (e.g. net 30 days).
type TermsOfPayment struct {
	ID          *string
	Name        *string
	EnglishName *string
	Days        *int
	TypeID      *string
	TypeText    *string
}

func (*TermsOfPayment) Resource() core.Resource {
	return core.Resource{
		Name:        "terms of payment",
		Path:        "termsofpayments",
		IdentityKey: "Id",
		APIVersion:  "v2",
		Operations:  []core.Operation{core.OperationList, core.OperationGet},
	}
}

func (t *TermsOfPayment) Identity() string {
	return derefString(t.ID)
}

func (t *TermsOfPayment) EncodeWire() (map[string]any, error) {
	payload := map[string]any{}
	setWireString(payload, "Id", t.ID)
	setWireString(payload, "Name", t.Name)
	setWireString(payload, "NameEnglish", t.EnglishName)
	setWireInt(payload, "NumberOfDays", t.Days)
	setWireString(payload, "TermsOfPaymentId", t.TypeID)
	setWireString(payload, "TermsOfPaymentTypeText", t.TypeText)
	return payload, nil
}

func (t *TermsOfPayment) DecodeWire(payload map[string]any) error {
	t.ID = wireString(payload, "Id")
	t.Name = wireString(payload, "Name")
	t.EnglishName = wireString(payload, "NameEnglish")
	t.Days = wireInt(payload, "NumberOfDays")
	t.TypeID = wireString(payload, "TermsOfPaymentId")
	t.TypeText = wireString(payload, "TermsOfPaymentTypeText")
	return nil
}

var _ core.WireModel = (*TermsOfPayment)(nil)
