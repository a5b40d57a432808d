package command

import gocmd "github.com/goliatone/go-command"

var (
	_ gocmd.Commander[CreateCustomerMessage] = (*CreateCustomerCommand)(nil)
	_ gocmd.Commander[UpdateCustomerMessage] = (*UpdateCustomerCommand)(nil)
	_ gocmd.Commander[RemoveCustomerMessage] = (*RemoveCustomerCommand)(nil)
)
