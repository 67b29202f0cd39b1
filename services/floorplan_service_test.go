package services

import (
	"testing"

	"restaurant-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorPlanUpdatesPersistZeroValues(t *testing.T) {
	// Deactivating a floor and clearing its name are both zero values in
	// Go; the update map must carry them anyway so the edit reaches the
	// database.
	plan := models.FloorPlan{
		ID:          3,
		FloorNumber: 2,
		Name:        "",
		Width:       20,
		Height:      15,
		IsActive:    false,
	}

	updates := floorPlanUpdates(plan)

	assert.Equal(t, false, updates["is_active"])
	assert.Equal(t, "", updates["name"])
	assert.Equal(t, 2, updates["floor_number"])
	assert.Equal(t, 20, updates["width"])
	assert.Equal(t, 15, updates["height"])
	assert.NotContains(t, updates, "id")
	assert.NotContains(t, updates, "restaurant_id")
}

func TestFloorPlanUpdateValidatesBeforeWrite(t *testing.T) {
	svc := NewFloorPlanService(nil)

	err := svc.Update(models.FloorPlan{ID: 1, FloorNumber: 1, Width: 0, Height: 15})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "dimensions", validation.Field)
}

func TestFloorPlanValidateRejectsUnusableDimensions(t *testing.T) {
	svc := NewFloorPlanService(nil)

	// Positive but too small for clearance plus a single table.
	err := svc.Update(models.FloorPlan{ID: 1, FloorNumber: 1, Width: 7, Height: 6})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}
