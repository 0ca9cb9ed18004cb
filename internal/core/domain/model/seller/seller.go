// Package seller holds the Seller entity. A seller receives new orders and its address
// is the pickup point handed to the courier.
package seller

import (
	"errors"
	"strings"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

var (
	ErrNameIsRequired         = errs.NewValueIsRequiredError("name")
	ErrSellerIsNotConstructed = errors.New("Seller must be created via NewSeller constructor")
)

type Seller struct {
	id        kernel.UUID
	name      string
	address   string
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewSeller validates and creates a Seller.
func NewSeller(id kernel.UUID, name, address string, createdAt time.Time) (*Seller, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = ErrNameIsRequired
	}
	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return nil, err
	}

	return &Seller{
		id:        id,
		name:      name,
		address:   address,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (s *Seller) Validate() error {
	if s == nil {
		return ErrSellerIsNotConstructed
	}
	return s.guard.Validate(ErrSellerIsNotConstructed)
}

func (s *Seller) ID() kernel.UUID      { return s.id }
func (s *Seller) Name() string         { return s.name }
func (s *Seller) Address() string      { return s.address }
func (s *Seller) CreatedAt() time.Time { return s.createdAt }
