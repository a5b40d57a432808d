package eaccounting

import (
	"fmt"

	eacommand "github.com/goliatone/go-eaccounting/command"
	eaquery "github.com/goliatone/go-eaccounting/query"
)

// CommandQueryService is the surface the facade wraps: customer
// mutations plus the typed readers.
type CommandQueryService interface {
	eacommand.MutatingService
	eaquery.CustomerReader
	eaquery.ReferenceReader
}

type Commands struct {
	CreateCustomer *eacommand.CreateCustomerCommand
	UpdateCustomer *eacommand.UpdateCustomerCommand
	RemoveCustomer *eacommand.RemoveCustomerCommand
}

type Queries struct {
	GetCustomer         *eaquery.GetCustomerQuery
	ListTermsOfPayment  *eaquery.ListTermsOfPaymentQuery
	ListDeliveryMethods *eaquery.ListDeliveryMethodsQuery
	ListDeliveryTerms   *eaquery.ListDeliveryTermsQuery
}

// Facade packages the command and query handlers around one service so
// message-driven hosts can register them in a single pass.
type Facade struct {
	service  CommandQueryService
	commands Commands
	queries  Queries
}

func NewFacade(service CommandQueryService) (*Facade, error) {
	if service == nil {
		return nil, fmt.Errorf("eaccounting: command/query service is required")
	}

	facade := &Facade{service: service}
	facade.commands = Commands{
		CreateCustomer: eacommand.NewCreateCustomerCommand(service),
		UpdateCustomer: eacommand.NewUpdateCustomerCommand(service),
		RemoveCustomer: eacommand.NewRemoveCustomerCommand(service),
	}
	facade.queries = Queries{
		GetCustomer:         eaquery.NewGetCustomerQuery(service),
		ListTermsOfPayment:  eaquery.NewListTermsOfPaymentQuery(service),
		ListDeliveryMethods: eaquery.NewListDeliveryMethodsQuery(service),
		ListDeliveryTerms:   eaquery.NewListDeliveryTermsQuery(service),
	}

	return facade, nil
}

func (f *Facade) Commands() Commands {
	if f == nil {
		return Commands{}
	}
	return f.commands
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Service() CommandQueryService {
	if f == nil {
		return nil
	}
	return f.service
}

var _ CommandQueryService = (*Client)(nil)
