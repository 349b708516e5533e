package market

import (
	"fmt"
	"time"

	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"
)

// transition is what moving an auction between two states entails
type transition struct {
	// activate stamps start_date with the current time
	activate bool
	// finish settles the auction's item with a payment
	finish bool
}

// planTransition checks that from -> to is a legal move. Staying in the same
// state is always legal and has no side effects.
func planTransition(from, to model.AuctionState) (transition, error) {
	if !to.Valid() {
		return transition{}, fmt.Errorf("%w: %q", marketerrors.ErrInvalidState, to)
	}
	if from == to {
		return transition{}, nil
	}

	switch {
	case from == model.StateFinished:
		return transition{}, fmt.Errorf("%w: auction is finished, cannot move to %s", marketerrors.ErrInvalidTransition, to)
	case from == model.StateActive && to == model.StateScheduled:
		return transition{}, fmt.Errorf("%w: active auction cannot be rescheduled", marketerrors.ErrInvalidTransition)
	case to == model.StateActive:
		return transition{activate: true}, nil
	case to == model.StateFinished:
		return transition{finish: true}, nil
	}
	return transition{}, fmt.Errorf("%w: %s to %s", marketerrors.ErrInvalidTransition, from, to)
}

// validateCreationDates requires supplied dates to lie in the future and be ordered
func validateCreationDates(start, end *time.Time, now time.Time) error {
	if start != nil && start.Before(now) {
		return fmt.Errorf("%w: start_date %s is in the past", marketerrors.ErrInvalidDates, start.Format(time.RFC3339))
	}
	if end != nil && end.Before(now) {
		return fmt.Errorf("%w: end_date %s is in the past", marketerrors.ErrInvalidDates, end.Format(time.RFC3339))
	}
	return validateDateOrder(start, end)
}

func validateDateOrder(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("%w: end_date is before start_date", marketerrors.ErrInvalidDates)
	}
	return nil
}
