package services

import (
	"testing"

	"restaurant-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []models.OrderStatus{
	models.OrderPlaced,
	models.OrderUnderProcess,
	models.OrderServed,
	models.OrderCompleted,
	models.OrderPaid,
}

func TestCanTransitionOnlySuccessorAllowed(t *testing.T) {
	successor := map[models.OrderStatus]models.OrderStatus{
		models.OrderPlaced:       models.OrderUnderProcess,
		models.OrderUnderProcess: models.OrderServed,
		models.OrderServed:       models.OrderCompleted,
		models.OrderCompleted:    models.OrderPaid,
	}

	// Exhaustive from×to matrix: exactly the four linear steps pass.
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			err := CanTransition(from, to)
			if successor[from] == to && to != "" {
				assert.NoError(t, err, "%s -> %s must be allowed", from, to)
			} else {
				var transition *TransitionError
				require.ErrorAs(t, err, &transition, "%s -> %s must be rejected", from, to)
				assert.Equal(t, string(from), transition.From)
				assert.Equal(t, string(to), transition.To)
			}
		}
	}
}

func TestPaidUnreachableWithoutCompleted(t *testing.T) {
	for _, from := range []models.OrderStatus{
		models.OrderPlaced,
		models.OrderUnderProcess,
		models.OrderServed,
	} {
		assert.Error(t, CanTransition(from, models.OrderPaid),
			"paid must be unreachable from %s", from)
	}
	assert.NoError(t, CanTransition(models.OrderCompleted, models.OrderPaid))
}

func TestNoStatusRegresses(t *testing.T) {
	for i, from := range allStatuses {
		for j := 0; j <= i; j++ {
			assert.Error(t, CanTransition(from, allStatuses[j]),
				"%s -> %s would regress or self-loop", from, allStatuses[j])
		}
	}
}

func TestPaidIsTerminal(t *testing.T) {
	for _, to := range allStatuses {
		assert.Error(t, CanTransition(models.OrderPaid, to))
	}
}

func TestActiveStatuses(t *testing.T) {
	assert.Equal(t, []models.OrderStatus{
		models.OrderPlaced,
		models.OrderUnderProcess,
		models.OrderServed,
		models.OrderCompleted,
	}, ActiveStatuses())

	assert.True(t, IsActiveStatus(models.OrderCompleted))
	assert.False(t, IsActiveStatus(models.OrderPaid))
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range allStatuses {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus(models.OrderStatus("cancelled")))
	assert.False(t, IsValidStatus(models.OrderStatus("")))
}

func TestOrderTotal(t *testing.T) {
	items := []models.OrderItem{
		{Price: 1200, Quantity: 2},
		{Price: 500, Quantity: 1},
	}
	assert.Equal(t, int64(2900), OrderTotal(items))
	assert.Equal(t, int64(0), OrderTotal(nil))
}
