package model

import (
	"github.com/goliatone/go-eaccounting/core"
)

// DeliveryTerms is a read-only reference entity: the vendor exposes it for
// listing and lookup only.
type DeliveryTerms struct {
	ID   *string
	Code *string
	Name *string
}

func (*DeliveryTerms) Resource() core.Resource {
	return core.Resource{
		Name:        "delivery terms",
		Path:        "deliveryterms",
		IdentityKey: "Id",
		APIVersion:  "v2",
		Operations:  []core.Operation{core.OperationList, core.OperationGet},
	}
}

func (t *DeliveryTerms) Identity() string {
	return derefString(t.ID)
}

func (t *DeliveryTerms) EncodeWire() (map[string]any, error) {
	return encodeReference(t.ID, t.Code, t.Name), nil
}

func (t *DeliveryTerms) DecodeWire(payload map[string]any) error {
	t.ID, t.Code, t.Name = decodeReference(payload)
	return nil
}

// DeliveryMethod mirrors DeliveryTerms: same wire shape, different endpoint.
type DeliveryMethod struct {
	ID   *string
	Code *string
	Name *string
}

func (*DeliveryMethod) Resource() core.Resource {
	return core.Resource{
		Name:        "delivery method",
		Path:        "deliverymethods",
		IdentityKey: "Id",
		APIVersion:  "v2",
		Operations:  []core.Operation{core.OperationList, core.OperationGet},
	}
}

func (m *DeliveryMethod) Identity() string {
	return derefString(m.ID)
}

func (m *DeliveryMethod) EncodeWire() (map[string]any, error) {
	return encodeReference(m.ID, m.Code, m.Name), nil
}

func (m *DeliveryMethod) DecodeWire(payload map[string]any) error {
	m.ID, m.Code, m.Name = decodeReference(payload)
	return nil
}

func decodeReference(payload map[string]any) (id, code, name *string) {
	return wireString(payload, "Id"), wireString(payload, "Code"), wireString(payload, "Name")
}

func encodeReference(id, code, name *string) map[string]any {
	payload := map[string]any{}
	setWireString(payload, "Id", id)
	setWireString(payload, "Code", code)
	setWireString(payload, "Name", name)
	return payload
}

var (
	_ core.WireModel = (*DeliveryTerms)(nil)
	_ core.WireModel = (*DeliveryMethod)(nil)
)
