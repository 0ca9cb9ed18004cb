package notification

import (
	"fmt"
	"strings"

	"ordermanagement/internal/pkg/errs"
)

// RecipientType identifies which directory a recipient id belongs to.
type RecipientType string

const (
	RecipientCustomer RecipientType = "CUSTOMER"
	RecipientSeller   RecipientType = "SELLER"
	RecipientCourier  RecipientType = "COURIER"
)

// ParseRecipientType accepts the names above in any letter case.
func ParseRecipientType(s string) (RecipientType, error) {
	rt := RecipientType(strings.ToUpper(strings.TrimSpace(s)))
	if err := rt.Validate(); err != nil {
		return "", err
	}
	return rt, nil
}

func (r RecipientType) Validate() error {
	switch r {
	case RecipientCustomer, RecipientSeller, RecipientCourier:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("recipientType", fmt.Errorf("%q is not a valid recipient type", string(r)))
	}
}

func (r RecipientType) String() string {
	return string(r)
}
