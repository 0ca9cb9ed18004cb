package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

type CreateCustomerCommand struct {
	customerID kernel.UUID
	name       string
	email      string
	phone      string

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(customerID kernel.UUID, name, email, phone string) (CreateCustomerCommand, error) {
	if err := errors.Join(customerID.Validate(), requireName(name)); err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		customerID: customerID,
		name:       name,
		email:      email,
		phone:      phone,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateCustomerCommand) Name() string            { return c.name }
func (c CreateCustomerCommand) Email() string           { return c.email }
func (c CreateCustomerCommand) Phone() string           { return c.phone }
