package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-eaccounting/core"
)

// MutatingService is the slice of the eAccounting service the commands
// need: resource mutations with server refresh.
type MutatingService interface {
	Add(ctx context.Context, m core.WireModel) error
	Update(ctx context.Context, m core.WireModel) error
	Remove(ctx context.Context, m core.WireModel) error
}

type CreateCustomerCommand struct {
	service MutatingService
}

func NewCreateCustomerCommand(service MutatingService) *CreateCustomerCommand {
	return &CreateCustomerCommand{service: service}
}

func (c *CreateCustomerCommand) Execute(ctx context.Context, msg CreateCustomerMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: create customer service is required")
	}
	if err := c.service.Add(ctx, msg.Customer); err != nil {
		return err
	}
	storeResult(ctx, msg.Customer)
	return nil
}

type UpdateCustomerCommand struct {
	service MutatingService
}

func NewUpdateCustomerCommand(service MutatingService) *UpdateCustomerCommand {
	return &UpdateCustomerCommand{service: service}
}

func (c *UpdateCustomerCommand) Execute(ctx context.Context, msg UpdateCustomerMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: update customer service is required")
	}
	if err := c.service.Update(ctx, msg.Customer); err != nil {
		return err
	}
	storeResult(ctx, msg.Customer)
	return nil
}

type RemoveCustomerCommand struct {
	service MutatingService
}

func NewRemoveCustomerCommand(service MutatingService) *RemoveCustomerCommand {
	return &RemoveCustomerCommand{service: service}
}

func (c *RemoveCustomerCommand) Execute(ctx context.Context, msg RemoveCustomerMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: remove customer service is required")
	}
	return c.service.Remove(ctx, msg.Customer)
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
