package reservation

import (
	"context"

	"github.com/juju/errors"
)

// Package reservation defines the reservation record and the store contract
// shared by the handlers and every storage backend.

// Reservation is a booked item owned by exactly one user. Values are never
// mutated once stored.
type Reservation struct {
	ID          string `json:"reservationId" yaml:"reservation_id" db:"reservation_id"`
	UserID      string `json:"userId" yaml:"user_id" db:"user_id"`
	ItemDetails string `json:"itemDetails" yaml:"item_details" db:"item_details"`
}

// Store maps a user id to that user's reservations, in insertion order.
//
// Get never treats an unknown user as an error: it returns an empty slice.
// Put is only used while seeding.
type Store interface {
	Get(ctx context.Context, userID string) ([]Reservation, error)
	Put(ctx context.Context, userID string, rs []Reservation) error
}

// ErrOwnerMismatch is returned by Put when a reservation's owner differs from the key.
var ErrOwnerMismatch = errors.New("reservation owner does not match user id")

// CheckOwner verifies that every reservation in rs is owned by userID.
func CheckOwner(userID string, rs []Reservation) error {
	for _, r := range rs {
		if r.UserID != userID {
			return errors.Annotatef(ErrOwnerMismatch, "reservation %q owned by %q, stored under %q", r.ID, r.UserID, userID)
		}
	}
	return nil
}
