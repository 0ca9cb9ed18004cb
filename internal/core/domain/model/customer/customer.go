// Package customer holds the Customer entity. Customers are looked up by the workflow
// engine only to confirm they exist and to address notifications.
package customer

import (
	"errors"
	"strings"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrNameIsRequired           = errs.NewValueIsRequiredError("name")
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer places orders.
type Customer struct {
	id        kernel.UUID
	name      string
	email     string
	phone     string
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewCustomer validates and creates a Customer. Email and phone are optional.
func NewCustomer(id kernel.UUID, name, email, phone string, createdAt time.Time) (*Customer, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = ErrNameIsRequired
	}
	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return nil, err
	}

	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID      { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
