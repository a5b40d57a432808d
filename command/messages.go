package command

import (
	"strings"

	"github.com/goliatone/go-eaccounting/model"
)

const (
	TypeCreateCustomer = "eaccounting.command.customer.create"
	TypeUpdateCustomer = "eaccounting.command.customer.update"
	TypeRemoveCustomer = "eaccounting.command.customer.remove"
)

type CreateCustomerMessage struct {
	Customer *model.Customer
}

func (CreateCustomerMessage) Type() string { return TypeCreateCustomer }

func (m CreateCustomerMessage) Validate() error {
	if m.Customer == nil {
		return commandValidationError("customer", "customer is required")
	}
	if strings.TrimSpace(m.Customer.Name()) == "" {
		return commandValidationError("name", "customer name is required")
	}
	if m.Customer.Address != nil {
		if err := m.Customer.Address.Validate(); err != nil {
			return commandWrapValidation(err, "command: invalid customer address")
		}
	}
	return nil
}

type UpdateCustomerMessage struct {
	Customer *model.Customer
}

func (UpdateCustomerMessage) Type() string { return TypeUpdateCustomer }

func (m UpdateCustomerMessage) Validate() error {
	if m.Customer == nil {
		return commandValidationError("customer", "customer is required")
	}
	if strings.TrimSpace(m.Customer.Identity()) == "" {
		return commandValidationError("id", "customer id is required for updates")
	}
	if m.Customer.Address != nil {
		if err := m.Customer.Address.Validate(); err != nil {
			return commandWrapValidation(err, "command: invalid customer address")
		}
	}
	return nil
}

type RemoveCustomerMessage struct {
	Customer *model.Customer
}

func (RemoveCustomerMessage) Type() string { return TypeRemoveCustomer }

func (m RemoveCustomerMessage) Validate() error {
	if m.Customer == nil {
		return commandValidationError("customer", "customer is required")
	}
	if strings.TrimSpace(m.Customer.Identity()) == "" {
		return commandValidationError("id", "customer id is required for removal")
	}
	return nil
}
