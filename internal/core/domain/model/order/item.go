package order

import (
	"errors"
	"math"
	"strings"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

const minItemQuantity = 1

var (
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("productName")
	ErrItemsAreRequired      = errs.NewValueIsRequiredError("items")
)

// Item is a single order line. It is immutable once created.
type Item struct {
	productName string
	quantity    int
	price       kernel.Money
}

// NewItem validates and creates an order line.
//
// Business rules:
//   - productName must be non-empty
//   - quantity must be at least 1
//   - price must be a constructed Money value (non-negative, two fractional digits at most)
func NewItem(productName string, quantity int, price kernel.Money) (Item, error) {
	var errList []error

	if strings.TrimSpace(productName) == "" {
		errList = append(errList, ErrProductNameIsRequired)
	}
	if quantity < minItemQuantity {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, minItemQuantity, math.MaxInt))
	}
	if err := price.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return Item{}, err
	}

	return Item{productName: productName, quantity: quantity, price: price}, nil
}

func (i Item) ProductName() string {
	return i.productName
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) Price() kernel.Money {
	return i.price
}

// Subtotal returns price × quantity.
func (i Item) Subtotal() kernel.Money {
	return i.price.Mul(i.quantity)
}

// TotalPrice sums the subtotals of items.
func TotalPrice(items []Item) kernel.Money {
	total := kernel.ZeroMoney()
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
