package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

const (
	// DefaultRejectReason is recorded when a seller declines an order without giving a reason.
	DefaultRejectReason = "seller cannot fulfil the order"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrCancelReasonIsRequired is returned when a cancellation is recorded without a reason.
	ErrCancelReasonIsRequired = errs.NewValueIsRequiredError("cancelReason")
)

// Order is the aggregate root of the workflow engine.
//
// An Order is an immutable snapshot. Every transition method leaves the receiver untouched
// and returns a new snapshot whose version is one higher, so a repository can persist it
// with an optimistic check against the version it was loaded at.
//
// Invariants:
//   - totalPrice equals the sum of price × quantity over all items
//   - courierID is set if and only if courierAssignedAt is set
//   - cancelReason is non-empty if and only if status is Cancelled
//   - items never change after creation
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	sellerID   kernel.UUID
	courierID  *kernel.UUID

	status     Status
	items      []Item
	totalPrice kernel.Money

	createdAt         time.Time
	updatedAt         time.Time
	sellerNotifiedAt  *time.Time
	courierNotifiedAt *time.Time
	courierAssignedAt *time.Time
	courierArrivedAt  *time.Time
	cancelledAt       *time.Time
	cancelReason      string

	version int64

	guard guard.ConstructorGuard
}

// NewOrder creates an order for customerID at sellerID.
//
// The order passes through Created and is returned in InProcessing with
// sellerNotifiedAt set to now, because creation and notifying the seller are one step.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("10.00")
//	pizza, _ := order.NewItem("pizza", 2, price)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, sellerID, []order.Item{pizza}, time.Now())
//	// o.TotalPrice().String() == "20.00"
func NewOrder(id, customerID, sellerID kernel.UUID, items []Item, now time.Time) (*Order, error) {
	var errList []error
	for _, uuid := range []kernel.UUID{id, customerID, sellerID} {
		if err := uuid.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if len(items) == 0 {
		errList = append(errList, ErrItemsAreRequired)
	}
	for _, it := range items {
		if err := it.price.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	o := &Order{
		id:         id,
		customerID: customerID,
		sellerID:   sellerID,
		status:     Created,
		items:      append([]Item(nil), items...),
		totalPrice: TotalPrice(items),
		createdAt:  now,
		updatedAt:  now,
		version:    1,
		guard:      guard.NewConstructorGuard(),
	}

	if err := o.status.transition(InProcessing, Created); err != nil {
		return nil, withOrderID(err, id)
	}
	o.status = InProcessing
	o.sellerNotifiedAt = &now

	return o, nil
}

// RestoreOrderParams carries persisted order state into RestoreOrder.
type RestoreOrderParams struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	SellerID          kernel.UUID
	CourierID         *kernel.UUID
	Status            Status
	Items             []Item
	TotalPrice        kernel.Money
	CreatedAt         time.Time
	UpdatedAt         time.Time
	SellerNotifiedAt  *time.Time
	CourierNotifiedAt *time.Time
	CourierAssignedAt *time.Time
	CourierArrivedAt  *time.Time
	CancelledAt       *time.Time
	CancelReason      string
	Version           int64
}

// RestoreOrder rebuilds an Order from persistence and rejects state that breaks
// the aggregate invariants.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	var errList []error
	for _, uuid := range []kernel.UUID{p.ID, p.CustomerID, p.SellerID} {
		if err := uuid.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if err := p.Status.Validate(); err != nil {
		errList = append(errList, err)
	}
	if len(p.Items) == 0 {
		errList = append(errList, ErrItemsAreRequired)
	}
	if err := p.TotalPrice.Validate(); err != nil {
		errList = append(errList, err)
	} else if computed := TotalPrice(p.Items); !computed.IsEqual(p.TotalPrice) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("%s does not match items total %s", p.TotalPrice, computed)))
	}
	if (p.CourierID == nil) != (p.CourierAssignedAt == nil) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("courierID",
			errors.New("courier and courierAssignedAt must be set together")))
	}
	if p.Status.HasCourier() && p.CourierID == nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("courierID",
			fmt.Errorf("%s requires a courier", p.Status)))
	}
	if (p.Status == Cancelled) != (strings.TrimSpace(p.CancelReason) != "") {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("cancelReason",
			fmt.Errorf("cancel reason must be present only when %s", Cancelled)))
	}
	if p.Version < 1 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not greater than 0", p.Version)))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Order{
		id:                p.ID,
		customerID:        p.CustomerID,
		sellerID:          p.SellerID,
		courierID:         p.CourierID,
		status:            p.Status,
		items:             append([]Item(nil), p.Items...),
		totalPrice:        p.TotalPrice,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
		sellerNotifiedAt:  p.SellerNotifiedAt,
		courierNotifiedAt: p.CourierNotifiedAt,
		courierAssignedAt: p.CourierAssignedAt,
		courierArrivedAt:  p.CourierArrivedAt,
		cancelledAt:       p.CancelledAt,
		cancelReason:      p.CancelReason,
		version:           p.Version,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID          { return o.id }
func (o *Order) CustomerID() kernel.UUID  { return o.customerID }
func (o *Order) SellerID() kernel.UUID    { return o.sellerID }
func (o *Order) Status() Status           { return o.status }
func (o *Order) TotalPrice() kernel.Money { return o.totalPrice }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) UpdatedAt() time.Time     { return o.updatedAt }
func (o *Order) CancelReason() string     { return o.cancelReason }
func (o *Order) Version() int64           { return o.version }

// CourierID returns the bound courier, or nil before assignment.
func (o *Order) CourierID() *kernel.UUID { return copyUUID(o.courierID) }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item { return append([]Item(nil), o.items...) }

func (o *Order) SellerNotifiedAt() *time.Time  { return copyTime(o.sellerNotifiedAt) }
func (o *Order) CourierNotifiedAt() *time.Time { return copyTime(o.courierNotifiedAt) }
func (o *Order) CourierAssignedAt() *time.Time { return copyTime(o.courierAssignedAt) }
func (o *Order) CourierArrivedAt() *time.Time  { return copyTime(o.courierArrivedAt) }
func (o *Order) CancelledAt() *time.Time       { return copyTime(o.cancelledAt) }

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// IsAssignedTo reports whether courierID is the courier bound to the order.
func (o *Order) IsAssignedTo(courierID kernel.UUID) bool {
	return o.courierID != nil && o.courierID.IsEqual(courierID)
}

// SellerOverdue reports whether the order is still waiting on the seller and the seller
// was notified strictly before cutoff.
func (o *Order) SellerOverdue(cutoff time.Time) bool {
	return o.status == InProcessing && o.sellerNotifiedAt != nil && o.sellerNotifiedAt.Before(cutoff)
}

// CourierOverdue reports whether the order is still waiting on its courier and the courier
// was assigned strictly before cutoff.
func (o *Order) CourierOverdue(cutoff time.Time) bool {
	return o.status == AwaitingCourier && o.courierAssignedAt != nil && o.courierAssignedAt.Before(cutoff)
}

// Review records the seller's decision on an InProcessing order.
// Accepting moves it to Cooking. Rejecting cancels it with reason, or with
// DefaultRejectReason when reason is blank.
func (o *Order) Review(canFulfill bool, reason string, now time.Time) (*Order, error) {
	if canFulfill {
		return o.move(Cooking, now, InProcessing)
	}
	if strings.TrimSpace(reason) == "" {
		reason = DefaultRejectReason
	}
	return o.Cancel(reason, now)
}

// Cancel moves an InProcessing order to Cancelled.
func (o *Order) Cancel(reason string, now time.Time) (*Order, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrCancelReasonIsRequired
	}
	next, err := o.move(Cancelled, now, InProcessing)
	if err != nil {
		return nil, err
	}
	next.cancelledAt = &now
	next.cancelReason = reason
	return next, nil
}

// Assemble moves a Cooking order to Assembling.
func (o *Order) Assemble(now time.Time) (*Order, error) {
	return o.move(Assembling, now, Cooking)
}

// StartCourierSearch moves an Assembling order to SearchingCourier.
// An order that is already searching is returned as is, so a search can be re-run
// when no courier was free the first time.
func (o *Order) StartCourierSearch(now time.Time) (*Order, error) {
	if o.status == SearchingCourier {
		return o, nil
	}
	return o.move(SearchingCourier, now, Assembling)
}

// AssignCourier binds courierID to a SearchingCourier order and moves it to
// AwaitingCourier. courierAssignedAt and courierNotifiedAt are both set to now.
func (o *Order) AssignCourier(courierID kernel.UUID, now time.Time) (*Order, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}
	next, err := o.move(AwaitingCourier, now, SearchingCourier)
	if err != nil {
		return nil, err
	}
	next.courierID = &courierID
	next.courierAssignedAt = &now
	next.courierNotifiedAt = &now
	return next, nil
}

// AcceptDelivery checks that courierID may acknowledge the order. It has no effect
// on state.
func (o *Order) AcceptDelivery(courierID kernel.UUID) error {
	if err := o.status.transition(AwaitingCourier, AwaitingCourier); err != nil {
		return withOrderID(err, o.id)
	}
	if !o.IsAssignedTo(courierID) {
		return fmt.Errorf("%w: order %s, courier %s", ErrCourierNotAssigned, o.id.String(), courierID.String())
	}
	return nil
}

// MarkCourierArrived records the assigned courier picking up the order and moves it
// to InDelivery. Both AwaitingCourier and Delayed orders accept it.
func (o *Order) MarkCourierArrived(courierID kernel.UUID, now time.Time) (*Order, error) {
	if err := o.status.transition(InDelivery, AwaitingCourier, Delayed); err != nil {
		return nil, withOrderID(err, o.id)
	}
	if !o.IsAssignedTo(courierID) {
		return nil, fmt.Errorf("%w: order %s, courier %s", ErrCourierNotAssigned, o.id.String(), courierID.String())
	}
	next, err := o.move(InDelivery, now, AwaitingCourier, Delayed)
	if err != nil {
		return nil, err
	}
	next.courierArrivedAt = &now
	return next, nil
}

// Delay moves an AwaitingCourier order to Delayed.
func (o *Order) Delay(now time.Time) (*Order, error) {
	return o.move(Delayed, now, AwaitingCourier)
}

func (o *Order) move(target Status, now time.Time, from ...Status) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := o.status.transition(target, from...); err != nil {
		return nil, withOrderID(err, o.id)
	}
	next := o.clone()
	next.status = target
	next.updatedAt = now
	next.version = o.version + 1
	return next, nil
}

func (o *Order) clone() *Order {
	c := *o
	c.items = append([]Item(nil), o.items...)
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyUUID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
