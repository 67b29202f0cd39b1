package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConflictErrorCarriesExistingOrderID(t *testing.T) {
	err := &ConflictError{
		Resource:        "table",
		Reason:          "table 5 already has an active order",
		ExistingOrderID: 42,
	}

	assert.Contains(t, err.Error(), "existing order 42")

	var conflict *ConflictError
	assert.True(t, errors.As(fmt.Errorf("create order: %w", err), &conflict))
	assert.Equal(t, uint(42), conflict.ExistingOrderID)
}

func TestNotFoundWrapping(t *testing.T) {
	err := fmt.Errorf("order %d: %w", 7, ErrNotFound)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLayoutOverflowErrorMessage(t *testing.T) {
	err := &LayoutOverflowError{
		TableCount:     9,
		FloorWidth:     10,
		FloorHeight:    10,
		RequiredWidth:  16,
		RequiredHeight: 13,
	}
	assert.Contains(t, err.Error(), "needs at least 16x13")
}
