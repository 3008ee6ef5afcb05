package statemachine

import (
	"errors"

	"littlelemon-api/models"
)

// Named states over the order's boolean status column.
const (
	StatusPending   = "pending"
	StatusDelivered = "delivered"
)

var (
	// ErrNotAssigned rejects a delivery by anyone but the assigned crew member.
	ErrNotAssigned = errors.New("order is not assigned to this delivery crew member")
	// ErrAlreadyDelivered marks the transition redundant; callers treat it as
	// a no-op success rather than a failure.
	ErrAlreadyDelivered = errors.New("order is already delivered")
)

// StatusName renders the status column for responses and logs.
func StatusName(delivered bool) string {
	if delivered {
		return StatusDelivered
	}
	return StatusPending
}

// CanMarkDelivered validates the pending → delivered transition for an acting
// delivery crew member. Delivered is terminal; there is no reverse transition.
func CanMarkDelivered(o *models.Order, crewUserID uint) error {
	if o.DeliveryCrewID == nil || *o.DeliveryCrewID != crewUserID {
		return ErrNotAssigned
	}
	if o.Status {
		return ErrAlreadyDelivered
	}
	return nil
}
