package courier

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrCourierIsBusy is returned by Reserve when the courier already holds a delivery.
	ErrCourierIsBusy = errors.New("courier is not available")
	// ErrCourierIsIdle is returned by Release when the courier holds no delivery.
	ErrCourierIsIdle = errors.New("courier is already available")
	// ErrAssignmentConflict is returned by a repository when a reserve or release lost
	// a race with another writer of the same courier.
	ErrAssignmentConflict = errors.New("courier assignment conflict")
)

// Courier is a delivery courier. Like Order it is an immutable snapshot:
// Reserve and Release return a new version and leave the receiver untouched.
//
// Business rules:
//   - name must be non-empty
//   - a new courier is available
//   - available is only flipped by Reserve and Release, which is how the
//     assignment protocol binds a courier to at most one active order
type Courier struct {
	id        kernel.UUID
	name      string
	phone     string
	available bool
	createdAt time.Time
	version   int64
	guard     guard.ConstructorGuard
}

// NewCourier creates an available courier.
//
// Example:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), "Alice", "+1 555 0100", time.Now())
//	if err != nil {
//	    return err
//	}
func NewCourier(id kernel.UUID, name, phone string, now time.Time) (*Courier, error) {
	c := &Courier{
		phone:     phone,
		available: true,
		createdAt: now,
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier from persistent storage.
func RestoreCourier(id kernel.UUID, name, phone string, available bool, createdAt time.Time, version int64) (*Courier, error) {
	c := &Courier{
		phone:     phone,
		available: available,
		createdAt: createdAt,
		version:   version,
		guard:     guard.NewConstructorGuard(),
	}

	var versionErr error
	if version < 1 {
		versionErr = errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is not greater than 0", version))
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		versionErr,
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Courier was built by NewCourier or RestoreCourier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Courier) ID() kernel.UUID      { return c.id }
func (c *Courier) Name() string         { return c.name }
func (c *Courier) Phone() string        { return c.phone }
func (c *Courier) IsAvailable() bool    { return c.available }
func (c *Courier) CreatedAt() time.Time { return c.createdAt }
func (c *Courier) Version() int64       { return c.version }

// Reserve returns an unavailable copy of an available courier.
func (c *Courier) Reserve() (*Courier, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !c.available {
		return nil, fmt.Errorf("%w: %s", ErrCourierIsBusy, c.id.String())
	}
	return c.withAvailable(false), nil
}

// Release returns an available copy of a reserved courier.
func (c *Courier) Release() (*Courier, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.available {
		return nil, fmt.Errorf("%w: %s", ErrCourierIsIdle, c.id.String())
	}
	return c.withAvailable(true), nil
}

func (c *Courier) withAvailable(available bool) *Courier {
	next := *c
	next.available = available
	next.version = c.version + 1
	return &next
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
