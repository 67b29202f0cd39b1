package services

import (
	"errors"
	"fmt"
)

// ErrNotFound wraps every missing floor plan / table / order lookup so
// controllers can map it to 404 with a single errors.Is check.
var ErrNotFound = errors.New("not_found")

// ValidationError rejects malformed input before anything is written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// ConflictError is returned when a write collides with existing state.
// For the active-order case ExistingOrderID is always set so staff can pull
// up the order that is blocking the table.
type ConflictError struct {
	Resource        string
	Reason          string
	ExistingOrderID uint
}

func (e *ConflictError) Error() string {
	if e.ExistingOrderID != 0 {
		return fmt.Sprintf("%s conflict: %s (existing order %d)", e.Resource, e.Reason, e.ExistingOrderID)
	}
	return fmt.Sprintf("%s conflict: %s", e.Resource, e.Reason)
}

// LayoutOverflowError means the requested table count cannot fit the floor's
// declared dimensions without violating the edge clearance. RequiredWidth and
// RequiredHeight are the minimum floor dimensions that would fit the request,
// so the admin can either shrink the count or grow the floor.
type LayoutOverflowError struct {
	TableCount     int
	FloorWidth     int
	FloorHeight    int
	RequiredWidth  int
	RequiredHeight int
}

func (e *LayoutOverflowError) Error() string {
	return fmt.Sprintf("%d tables do not fit a %dx%d floor; needs at least %dx%d",
		e.TableCount, e.FloorWidth, e.FloorHeight, e.RequiredWidth, e.RequiredHeight)
}

// TransitionError rejects an order-status change that is not the single legal
// successor of the current status.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal order transition %s -> %s", e.From, e.To)
}
