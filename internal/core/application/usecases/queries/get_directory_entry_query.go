package queries

import (
	"errors"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/guard"
)

var ErrGetDirectoryEntryQueryIsNotConstructed = errors.New(
	"GetDirectoryEntryQuery must be created via NewGetDirectoryEntryQuery constructor",
)

// GetDirectoryEntryQuery looks up a single customer, seller or courier by id.
// The handler decides which directory is read.
type GetDirectoryEntryQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetDirectoryEntryQuery(id kernel.UUID) (GetDirectoryEntryQuery, error) {
	if err := id.Validate(); err != nil {
		return GetDirectoryEntryQuery{}, err
	}
	return GetDirectoryEntryQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDirectoryEntryQuery) Validate() error {
	return q.guard.Validate(ErrGetDirectoryEntryQueryIsNotConstructed)
}

func (q GetDirectoryEntryQuery) ID() kernel.UUID { return q.id }
