package model

import (
	"time"

	"github.com/goliatone/go-eaccounting/core"
)

// Customer is the aggregate root. The invoice Address is owned by the
// customer and is never nil, which keeps the Name accessors resolvable at
// all times. The delivery address, delivery references, and payment terms
// are optional.
type Customer struct {
	ID        *string
	Number    *string
	NIN       *string
	IsCompany bool

	VATNumber   *string
	Currency    *string
	GLN         *string
	Email       *string
	Phone       *string
	MobilePhone *string
	URL         *string
	Note        *string

	ContactName        *string
	ContactEmail       *string
	ContactPhone       *string
	ContactMobilePhone *string

	Address         *Address
	DeliveryAddress *Address
	DeliveryMethod  *DeliveryMethod
	DeliveryTerms   *DeliveryTerms
	TermsOfPayment  *TermsOfPayment

	WebshopCustomerNumber               *string
	LastInvoiceDate                     *time.Time
	LastEdited                          *time.Time
	ReverseChargeOnConstructionServices *bool
}

// NewCustomer returns a customer with the invoice address instantiated and
// the company flag set, matching the vendor's defaults for new records.
func NewCustomer() *Customer {
	return &Customer{
		IsCompany: true,
		Address:   &Address{},
	}
}

func (*Customer) Resource() core.Resource {
	return core.Resource{
		Name:        "customer",
		Path:        "customers",
		IdentityKey: "Id",
		APIVersion:  "v2",
		Operations:  []core.Operation{core.OperationGet, core.OperationAdd, core.OperationUpdate},
	}
}

func (c *Customer) Identity() string {
	return derefString(c.ID)
}

// Name reads the customer name stored on the invoice address.
func (c *Customer) Name() string {
	if c.Address == nil {
		return ""
	}
	return derefString(c.Address.Name)
}

// SetName writes the customer name through to the invoice address.
func (c *Customer) SetName(name string) {
	if c.Address == nil {
		c.Address = &Address{}
	}
	c.Address.Name = &name
}

func (c *Customer) EncodeWire() (map[string]any, error) {
	payload := map[string]any{}
	setWireString(payload, "Id", c.ID)
	setWireString(payload, "CustomerNumber", c.Number)
	setWireString(payload, "CorporateIdentityNumber", c.NIN)
	payload["IsPrivatePerson"] = !c.IsCompany
	setWireString(payload, "VatNumber", c.VATNumber)
	setWireString(payload, "CurrencyCode", c.Currency)
	setWireString(payload, "GLN", c.GLN)
	setWireString(payload, "EmailAddress", c.Email)
	setWireString(payload, "Phone", c.Phone)
	setWireString(payload, "MobilePhone", c.MobilePhone)
	setWireString(payload, "WwwAddress", c.URL)
	setWireString(payload, "Note", c.Note)
	setWireString(payload, "ContactPersonName", c.ContactName)
	setWireString(payload, "ContactPersonEmail", c.ContactEmail)
	setWireString(payload, "ContactPersonPhone", c.ContactPhone)
	setWireString(payload, "ContactPersonMobile", c.ContactMobilePhone)
	setWireString(payload, "WebshopCustomerNumber", c.WebshopCustomerNumber)
	setWireBool(payload, "ReverseChargeOnConstructionServices", c.ReverseChargeOnConstructionServices)

	if c.Address != nil {
		setWireString(payload, "Name", c.Address.Name)
		setWireString(payload, "InvoiceAddress1", c.Address.Address)
		setWireString(payload, "InvoiceAddress2", c.Address.SecondaryAddress)
		setWireString(payload, "InvoicePostalCode", c.Address.PostalCode)
		setWireString(payload, "InvoiceCity", c.Address.City)
		setWireString(payload, "InvoiceCountryCode", c.Address.Country)
	}
	if !c.DeliveryAddress.IsEmpty() {
		setWireString(payload, "DeliveryCustomerName", c.DeliveryAddress.Name)
		setWireString(payload, "DeliveryAddress1", c.DeliveryAddress.Address)
		setWireString(payload, "DeliveryAddress2", c.DeliveryAddress.SecondaryAddress)
		setWireString(payload, "DeliveryPostalCode", c.DeliveryAddress.PostalCode)
		setWireString(payload, "DeliveryCity", c.DeliveryAddress.City)
		setWireString(payload, "DeliveryCountryCode", c.DeliveryAddress.Country)
	}
	if c.DeliveryMethod != nil {
		setWireString(payload, "DeliveryMethodId", c.DeliveryMethod.ID)
	}
	if c.DeliveryTerms != nil {
		setWireString(payload, "DeliveryTermId", c.DeliveryTerms.ID)
	}
	if c.TermsOfPayment != nil {
		setWireString(payload, "TermsOfPaymentId", c.TermsOfPayment.ID)
	}
	return payload, nil
}

func (c *Customer) DecodeWire(payload map[string]any) error {
	lastInvoiceDate, err := wireTime(payload, "LastInvoiceDate")
	if err != nil {
		return core.NewDecodeError(err, "customer")
	}
	lastEdited, err := wireTime(payload, "ChangedUtc")
	if err != nil {
		return core.NewDecodeError(err, "customer")
	}

	deliveryAddress := &Address{
		Name:             wireString(payload, "DeliveryCustomerName"),
		Address:          wireString(payload, "DeliveryAddress1"),
		SecondaryAddress: wireString(payload, "DeliveryAddress2"),
		PostalCode:       wireString(payload, "DeliveryPostalCode"),
		City:             wireString(payload, "DeliveryCity"),
		Country:          wireString(payload, "DeliveryCountryCode"),
	}
	if deliveryAddress.IsEmpty() {
		deliveryAddress = nil
	} else if err := deliveryAddress.Validate(); err != nil {
		return core.NewDecodeError(err, "customer")
	}

	var deliveryMethod *DeliveryMethod
	if id := wireString(payload, "DeliveryMethodId"); id != nil {
		deliveryMethod = &DeliveryMethod{ID: id}
	}
	var deliveryTerms *DeliveryTerms
	if id := wireString(payload, "DeliveryTermId"); id != nil {
		deliveryTerms = &DeliveryTerms{ID: id}
	}
	var termsOfPayment *TermsOfPayment
	if id := wireString(payload, "TermsOfPaymentId"); id != nil {
		termsOfPayment = &TermsOfPayment{ID: id}
		if nested, ok := payload["TermsOfPayment"].(map[string]any); ok {
			if err := termsOfPayment.DecodeWire(nested); err != nil {
				return err
			}
		}
	}

	c.ID = wireString(payload, "Id")
	c.Number = wireString(payload, "CustomerNumber")
	c.NIN = wireString(payload, "CorporateIdentityNumber")
	if privatePerson := wireBool(payload, "IsPrivatePerson"); privatePerson != nil {
		c.IsCompany = !*privatePerson
	} else {
		c.IsCompany = true
	}
	c.VATNumber = wireString(payload, "VatNumber")
	c.Currency = wireString(payload, "CurrencyCode")
	c.GLN = wireString(payload, "GLN")
	c.Email = wireString(payload, "EmailAddress")
	c.Phone = wireString(payload, "Phone")
	c.MobilePhone = wireString(payload, "MobilePhone")
	c.URL = wireString(payload, "WwwAddress")
	c.Note = wireString(payload, "Note")
	c.ContactName = wireString(payload, "ContactPersonName")
	c.ContactEmail = wireString(payload, "ContactPersonEmail")
	c.ContactPhone = wireString(payload, "ContactPersonPhone")
	c.ContactMobilePhone = wireString(payload, "ContactPersonMobile")

	if c.Address == nil {
		c.Address = &Address{}
	}
	c.Address.Name = wireString(payload, "Name")
	c.Address.Address = wireString(payload, "InvoiceAddress1")
	c.Address.SecondaryAddress = wireString(payload, "InvoiceAddress2")
	c.Address.PostalCode = wireString(payload, "InvoicePostalCode")
	c.Address.City = wireString(payload, "InvoiceCity")
	c.Address.Country = wireString(payload, "InvoiceCountryCode")

	c.DeliveryAddress = deliveryAddress
	c.DeliveryMethod = deliveryMethod
	c.DeliveryTerms = deliveryTerms
	c.TermsOfPayment = termsOfPayment
	c.WebshopCustomerNumber = wireString(payload, "WebshopCustomerNumber")
	c.LastInvoiceDate = lastInvoiceDate
	c.LastEdited = lastEdited
	c.ReverseChargeOnConstructionServices = wireBool(payload, "ReverseChargeOnConstructionServices")

	return nil
}

var _ core.WireModel = (*Customer)(nil)
