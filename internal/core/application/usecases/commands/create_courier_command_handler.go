package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/courier"
	"ordermanagement/internal/core/ports"
)

// CreateCourierCommandHandler handles courier registration.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	clock      ports.Clock
}

func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory, clock ports.Clock) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle creates the courier and persists it within a transaction.
func (h CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) (*courier.Courier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierEntity, err := courier.NewCourier(cmd.CourierID(), cmd.Name(), cmd.Phone(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.CourierRepository().Add(ctx, courierEntity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return courierEntity, nil
}
