package commands

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrCreateSellerCommandIsNotConstructed = errors.New(
	"CreateSellerCommand must be created via NewCreateSellerCommand constructor",
)

type CreateSellerCommand struct {
	sellerID kernel.UUID
	name     string
	address  string

	guard guard.ConstructorGuard
}

func NewCreateSellerCommand(sellerID kernel.UUID, name, address string) (CreateSellerCommand, error) {
	if err := errors.Join(sellerID.Validate(), requireName(name)); err != nil {
		return CreateSellerCommand{}, err
	}

	return CreateSellerCommand{
		sellerID: sellerID,
		name:     name,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateSellerCommand) Validate() error {
	return c.guard.Validate(ErrCreateSellerCommandIsNotConstructed)
}

func (c CreateSellerCommand) SellerID() kernel.UUID { return c.sellerID }
func (c CreateSellerCommand) Name() string          { return c.name }
func (c CreateSellerCommand) Address() string       { return c.address }
