package services

import (
	"restaurant-backend/models"
)

// Layout tunables. Table footprints are fixed; only the gaps between tables
// stretch with the floor dimensions.
const (
	maxLayoutColumns   = 3
	defaultTableWidth  = 4
	defaultTableHeight = 3
	defaultSeats       = 4

	// MaxTablesPerFloor is the hard cap per layout request, enforced before
	// the allocator runs.
	MaxTablesPerFloor = 50
)

// TablePlacement is one allocated slot: where the table sits and how many
// seats it gets. Table numbers are assigned separately by the sequencer.
type TablePlacement struct {
	Rect  Rect              `json:"rect"`
	Shape models.TableShape `json:"shape"`
	Seats int               `json:"seats"`
}

// GenerateLayout computes a deterministic grid of non-overlapping table
// rectangles for the floor. Identical inputs always produce identical
// output, so admin previews match what gets persisted.
//
// Tables fill rows of up to maxLayoutColumns; horizontal and vertical gaps
// are computed so the grid plus its edge clearance spans the floor. If the
// floor cannot fit the request, a *LayoutOverflowError reports the minimum
// dimensions that would.
func GenerateLayout(floor models.FloorPlan, tableCount int) ([]TablePlacement, error) {
	if tableCount == 0 {
		return []TablePlacement{}, nil
	}
	if tableCount < 0 {
		return nil, &ValidationError{Field: "tableCount", Reason: "must not be negative"}
	}

	columns := maxLayoutColumns
	if tableCount < columns {
		columns = tableCount
	}
	rows := (tableCount + columns - 1) / columns

	overflow := func() *LayoutOverflowError {
		return &LayoutOverflowError{
			TableCount:     tableCount,
			FloorWidth:     floor.Width,
			FloorHeight:    floor.Height,
			RequiredWidth:  2*EdgeMargin + columns*defaultTableWidth,
			RequiredHeight: 2*EdgeMargin + rows*defaultTableHeight,
		}
	}

	// Distribute leftover width/height evenly between the tables. Integer
	// division keeps the result deterministic; the remainder stays as extra
	// clearance on the right/bottom.
	spareX := floor.Width - 2*EdgeMargin - columns*defaultTableWidth
	spareY := floor.Height - 2*EdgeMargin - rows*defaultTableHeight
	if spareX < 0 || spareY < 0 {
		return nil, overflow()
	}

	gapX, gapY := 0, 0
	if columns > 1 {
		gapX = spareX / (columns - 1)
	}
	if rows > 1 {
		gapY = spareY / (rows - 1)
	}

	placements := make([]TablePlacement, 0, tableCount)
	for i := 0; i < tableCount; i++ {
		row := i / columns
		col := i % columns

		rect := Rect{
			X:      EdgeMargin + col*(defaultTableWidth+gapX),
			Y:      EdgeMargin + row*(defaultTableHeight+gapY),
			Width:  defaultTableWidth,
			Height: defaultTableHeight,
		}

		// Belt and suspenders: the gap math above should already guarantee
		// this, so a violation here means the floor is genuinely too small.
		if len(ValidatePlacement(rect, floor.Width, floor.Height, EdgeMargin)) > 0 {
			return nil, overflow()
		}

		seats := defaultSeats
		if i%4 == 3 {
			seats = 6 // visual variety only, geometry is unaffected
		}

		placements = append(placements, TablePlacement{
			Rect:  rect,
			Shape: models.ShapeRectangle,
			Seats: seats,
		})
	}

	return placements, nil
}
