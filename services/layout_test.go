package services

import (
	"fmt"
	"testing"

	"restaurant-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectsOverlap(a, b Rect) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

func TestGenerateLayoutAllRectsValid(t *testing.T) {
	floors := []models.FloorPlan{
		{Width: 20, Height: 15},
		{Width: 30, Height: 30},
		{Width: 16, Height: 9},
		{Width: 50, Height: 40},
	}

	for _, floor := range floors {
		for count := 0; count <= 12; count++ {
			name := fmt.Sprintf("%dx%d/%d tables", floor.Width, floor.Height, count)
			t.Run(name, func(t *testing.T) {
				placements, err := GenerateLayout(floor, count)
				if err != nil {
					var overflow *LayoutOverflowError
					require.ErrorAs(t, err, &overflow)
					return
				}

				assert.Len(t, placements, count)
				for _, p := range placements {
					assert.Empty(t, ValidatePlacement(p.Rect, floor.Width, floor.Height, EdgeMargin),
						"rect %+v must pass the geometry validator", p.Rect)
					assert.Positive(t, p.Seats)
				}
			})
		}
	}
}

func TestGenerateLayoutDeterministic(t *testing.T) {
	floor := models.FloorPlan{Width: 25, Height: 20}

	first, err1 := GenerateLayout(floor, 9)
	second, err2 := GenerateLayout(floor, 9)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestGenerateLayoutZeroTables(t *testing.T) {
	placements, err := GenerateLayout(models.FloorPlan{Width: 20, Height: 15}, 0)
	require.NoError(t, err)
	assert.Empty(t, placements)
}

func TestGenerateLayoutOverflowReportsRequiredDimensions(t *testing.T) {
	// A 10x10 floor cannot hold 9 tables of 4x3 plus clearance.
	_, err := GenerateLayout(models.FloorPlan{Width: 10, Height: 10}, 9)

	var overflow *LayoutOverflowError
	require.ErrorAs(t, err, &overflow)

	assert.Equal(t, 9, overflow.TableCount)
	assert.Equal(t, 10, overflow.FloorWidth)
	assert.Equal(t, 10, overflow.FloorHeight)
	// 3 columns of 4 wide + 2-unit clearance each side.
	assert.Equal(t, 16, overflow.RequiredWidth)
	// 3 rows of 3 high + clearance.
	assert.Equal(t, 13, overflow.RequiredHeight)
}

func TestGenerateLayoutFullSetupScenario(t *testing.T) {
	floor := models.FloorPlan{Width: 20, Height: 15}

	placements, err := GenerateLayout(floor, 8)
	require.NoError(t, err)
	require.Len(t, placements, 8)

	for i, p := range placements {
		assert.Empty(t, ValidatePlacement(p.Rect, floor.Width, floor.Height, EdgeMargin))
		for j := i + 1; j < len(placements); j++ {
			assert.False(t, rectsOverlap(p.Rect, placements[j].Rect),
				"tables %d and %d overlap", i, j)
		}
	}
}

func TestGenerateLayoutNarrowFloorOverflows(t *testing.T) {
	// Two tables always go side by side; an 8-unit-wide floor only has room
	// for one 4-wide table between the clearances.
	_, err := GenerateLayout(models.FloorPlan{Width: 8, Height: 30}, 2)

	var overflow *LayoutOverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, 12, overflow.RequiredWidth)
}

func TestGenerateLayoutNegativeCount(t *testing.T) {
	_, err := GenerateLayout(models.FloorPlan{Width: 20, Height: 15}, -1)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}
