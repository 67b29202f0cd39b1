package services

import (
	"testing"

	"restaurant-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These cover the request validation that runs before any storage access;
// the transactional paths are exercised against a real MySQL in staging.

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	svc := NewOrderService(nil, StubGateway{})

	_, err := svc.CreateOrder(CreateOrderRequest{TableID: 1, UserID: 1})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "items", validation.Field)
}

func TestCreateOrderRejectsZeroQuantity(t *testing.T) {
	svc := NewOrderService(nil, StubGateway{})

	_, err := svc.CreateOrder(CreateOrderRequest{
		TableID: 1,
		UserID:  1,
		Items:   []OrderItemRequest{{MenuItemID: 2, Quantity: 0}},
	})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "quantity", validation.Field)
}

func TestAdvanceStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewOrderService(nil, StubGateway{})

	_, err := svc.AdvanceStatus(1, models.OrderStatus("delivered"))

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "targetStatus", validation.Field)
}

func TestStubGatewayAlwaysSucceeds(t *testing.T) {
	ref, err := StubGateway{}.Charge(3800, "AB4D93KF")
	require.NoError(t, err)
	assert.NotEmpty(t, ref)

	// Each settlement gets its own transaction reference.
	ref2, err := StubGateway{}.Charge(3800, "AB4D93KF")
	require.NoError(t, err)
	assert.NotEqual(t, ref, ref2)
}
