package kernel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"fleetrent/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// NewOrderID or OrderIDFromString. The zero value is invalid.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

var orderIDPattern = regexp.MustCompile(`^P-(\d{4,})$`)

// OrderID is a value object holding the sequential human-readable code that
// identifies a pedido, e.g. "P-0001". Codes are allocated in order by the
// pedido repository; the numeric suffix is zero-padded to at least four digits.
//
// OrderID is immutable and safe for concurrent use. The zero value fails
// Validate, so identifiers always come through one of the constructors.
type OrderID struct {
	code string
	seq  int
}

// NewOrderID builds an OrderID from its sequence number.
// The sequence must be positive.
//
// Example:
//
//	id, err := kernel.NewOrderID(1)
//	// id.String() == "P-0001"
func NewOrderID(seq int) (OrderID, error) {
	if seq <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"order id sequence",
			fmt.Errorf("%d is not greater than 0", seq),
		)
	}
	return OrderID{
		code: fmt.Sprintf("P-%04d", seq),
		seq:  seq,
	}, nil
}

// OrderIDFromString parses a pedido code such as "P-0001".
// Used when reconstructing pedidos from persistence or routing HTTP requests.
func OrderIDFromString(s string) (OrderID, error) {
	m := orderIDPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"order id",
			fmt.Errorf("%q does not match P-NNNN", s),
		)
	}

	seq, err := strconv.Atoi(m[1])
	if err != nil || seq <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"order id",
			fmt.Errorf("%q has an invalid sequence number", s),
		)
	}

	return OrderID{code: fmt.Sprintf("P-%04d", seq), seq: seq}, nil
}

// Validate reports whether the OrderID was properly constructed.
func (id OrderID) Validate() error {
	if id.code == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// String returns the canonical code, e.g. "P-0001".
func (id OrderID) String() string {
	return id.code
}

// Seq returns the numeric sequence behind the code.
func (id OrderID) Seq() int {
	return id.seq
}

// IsEqual compares two identifiers by their canonical code.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.code == other.code
}
