package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePlacement(t *testing.T) {
	tests := []struct {
		name      string
		rect      Rect
		floorW    int
		floorH    int
		wantEdges []string
	}{
		{
			name:      "compliant placement",
			rect:      Rect{X: 2, Y: 2, Width: 4, Height: 3},
			floorW:    20,
			floorH:    15,
			wantEdges: nil,
		},
		{
			name:      "flush against left wall",
			rect:      Rect{X: 0, Y: 2, Width: 4, Height: 3},
			floorW:    20,
			floorH:    15,
			wantEdges: []string{"left"},
		},
		{
			name:      "inside top clearance",
			rect:      Rect{X: 2, Y: 1, Width: 4, Height: 3},
			floorW:    20,
			floorH:    15,
			wantEdges: []string{"top"},
		},
		{
			name:      "overhangs right clearance",
			rect:      Rect{X: 15, Y: 2, Width: 4, Height: 3},
			floorW:    20,
			floorH:    15,
			wantEdges: []string{"right"},
		},
		{
			name:      "overhangs bottom clearance",
			rect:      Rect{X: 2, Y: 11, Width: 4, Height: 3},
			floorW:    20,
			floorH:    15,
			wantEdges: []string{"bottom"},
		},
		{
			name:      "tiny floor breaches two edges",
			rect:      Rect{X: 0, Y: 0, Width: 6, Height: 6},
			floorW:    8,
			floorH:    8,
			wantEdges: []string{"left", "top"},
		},
		{
			name:      "widest rect that still fits",
			rect:      Rect{X: 2, Y: 2, Width: 16, Height: 11},
			floorW:    20,
			floorH:    15,
			wantEdges: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := ValidatePlacement(tt.rect, tt.floorW, tt.floorH, EdgeMargin)

			var edges []string
			for _, v := range violations {
				edges = append(edges, v.Edge)
			}
			assert.Equal(t, tt.wantEdges, edges)
		})
	}
}

func TestValidatePlacementIsPure(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 4, Height: 3}
	first := ValidatePlacement(rect, 20, 15, EdgeMargin)
	second := ValidatePlacement(rect, 20, 15, EdgeMargin)
	assert.Equal(t, first, second)
}
