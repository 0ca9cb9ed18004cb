package commands

import (
	"errors"
	"strings"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateCourierCommand registers a new courier. The courier starts available.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand(kernel.NewUUID(), "Alice", "+1 555 0100")
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//	c, err := handler.Handle(ctx, cmd)
type CreateCourierCommand struct {
	courierID kernel.UUID
	name      string
	phone     string

	guard guard.ConstructorGuard
}

func NewCreateCourierCommand(courierID kernel.UUID, name, phone string) (CreateCourierCommand, error) {
	if err := errors.Join(courierID.Validate(), requireName(name)); err != nil {
		return CreateCourierCommand{}, err
	}

	return CreateCourierCommand{
		courierID: courierID,
		name:      name,
		phone:     phone,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c CreateCourierCommand) CourierID() kernel.UUID { return c.courierID }
func (c CreateCourierCommand) Name() string           { return c.name }
func (c CreateCourierCommand) Phone() string          { return c.phone }

func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	return nil
}
