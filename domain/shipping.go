package domain

import (
	"fmt"
	"strings"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentBank PaymentMethod = "bank"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCard || p == PaymentBank
}

type ShippingStatus string

const (
	ShippingPending   ShippingStatus = "pending"
	ShippingShipping  ShippingStatus = "shipping"
	ShippingDelivered ShippingStatus = "delivered"
	ShippingCancelled ShippingStatus = "cancelled"
)

var shippingNext = map[ShippingStatus]map[ShippingStatus]bool{
	ShippingPending:   {ShippingShipping: true, ShippingCancelled: true},
	ShippingShipping:  {ShippingDelivered: true, ShippingCancelled: true},
	ShippingDelivered: {},
	ShippingCancelled: {},
}

func (s ShippingStatus) Valid() bool {
	_, ok := shippingNext[s]
	return ok
}

func ParseShippingStatus(raw string) (ShippingStatus, error) {
	s := ShippingStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidShippingStatus, raw)
	}
	return s, nil
}

// CanTransition reports whether the lifecycle table allows from -> to.
// Re-applying the current status is always allowed.
func CanTransition(from, to ShippingStatus) bool {
	if from == to {
		return from.Valid()
	}
	return shippingNext[from][to]
}
