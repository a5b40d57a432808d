package query

import "strings"

const (
	TypeGetCustomer         = "eaccounting.query.customer.get"
	TypeListTermsOfPayment  = "eaccounting.query.termsofpayment.list"
	TypeListDeliveryMethods = "eaccounting.query.deliverymethod.list"
	TypeListDeliveryTerms   = "eaccounting.query.deliveryterms.list"
)

type GetCustomerMessage struct {
	CustomerID string
}

func (GetCustomerMessage) Type() string { return TypeGetCustomer }

func (m GetCustomerMessage) Validate() error {
	if strings.TrimSpace(m.CustomerID) == "" {
		return queryValidationError("customer_id", "customer id is required")
	}
	return nil
}

type ListTermsOfPaymentMessage struct {
	Filters map[string]string
}

func (ListTermsOfPaymentMessage) Type() string { return TypeListTermsOfPayment }

func (ListTermsOfPaymentMessage) Validate() error { return nil }

type ListDeliveryMethodsMessage struct {
	Filters map[string]string
}

func (ListDeliveryMethodsMessage) Type() string { return TypeListDeliveryMethods }

func (ListDeliveryMethodsMessage) Validate() error { return nil }

type ListDeliveryTermsMessage struct {
	Filters map[string]string
}

func (ListDeliveryTermsMessage) Type() string { return TypeListDeliveryTerms }

func (ListDeliveryTermsMessage) Validate() error { return nil }
