package services

import (
	"testing"

	"restaurant-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Request validation runs before any storage access, so these all use a
// service with no database behind it.

func TestConfigureFloorTablesRejectsEmptyRequest(t *testing.T) {
	svc := NewTableService(nil)

	_, err := svc.ConfigureFloorTables(ConfigureTablesRequest{})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "floors", validation.Field)
}

func TestConfigureFloorTablesRejectsDuplicateFloor(t *testing.T) {
	svc := NewTableService(nil)

	_, err := svc.ConfigureFloorTables(ConfigureTablesRequest{
		Floors: []FloorCountRequest{
			{FloorPlanID: 7, TableCount: 4},
			{FloorPlanID: 7, TableCount: 6},
		},
	})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "floors", validation.Field)
	assert.Contains(t, validation.Reason, "listed twice")
}

func TestPreviewLayoutRejectsDuplicateFloor(t *testing.T) {
	svc := NewTableService(nil)

	_, err := svc.PreviewLayout(ConfigureTablesRequest{
		Floors: []FloorCountRequest{
			{FloorPlanID: 3, TableCount: 2},
			{FloorPlanID: 3, TableCount: 2},
		},
	})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "floors", validation.Field)
}

func TestUpdatePlacementRejectsBadSize(t *testing.T) {
	svc := NewTableService(nil)

	_, err := svc.UpdatePlacement(1, Rect{X: 2, Y: 2, Width: 0, Height: 3}, models.ShapeRectangle, 4)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "size", validation.Field)
}

func TestUpdatePlacementRejectsZeroSeats(t *testing.T) {
	svc := NewTableService(nil)

	_, err := svc.UpdatePlacement(1, Rect{X: 2, Y: 2, Width: 4, Height: 3}, models.ShapeRectangle, 0)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "seats", validation.Field)
}
