package services

import "fmt"

// EdgeMargin is the minimum clearance, in grid units, between any table
// rectangle and the floor plan boundary. Walkway space for staff and chairs.
const EdgeMargin = 2

// Rect is a table footprint on the floor grid; X/Y is the top-left corner.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Violation names the floor edge a rectangle breaches.
type Violation struct {
	Edge    string `json:"edge"` // left, top, right, bottom
	Message string `json:"message"`
}

// ValidatePlacement checks one table rectangle against the floor bounds and
// the edge clearance. Pure: returns nil for a compliant placement. Used both
// to reject manual placement edits and to sanity-check generated layouts.
func ValidatePlacement(rect Rect, floorWidth, floorHeight, margin int) []Violation {
	var violations []Violation

	if rect.X < margin {
		violations = append(violations, Violation{
			Edge:    "left",
			Message: fmt.Sprintf("x=%d is inside the %d-unit left clearance", rect.X, margin),
		})
	}
	if rect.Y < margin {
		violations = append(violations, Violation{
			Edge:    "top",
			Message: fmt.Sprintf("y=%d is inside the %d-unit top clearance", rect.Y, margin),
		})
	}
	if rect.X+rect.Width > floorWidth-margin {
		violations = append(violations, Violation{
			Edge:    "right",
			Message: fmt.Sprintf("x+width=%d exceeds %d", rect.X+rect.Width, floorWidth-margin),
		})
	}
	if rect.Y+rect.Height > floorHeight-margin {
		violations = append(violations, Violation{
			Edge:    "bottom",
			Message: fmt.Sprintf("y+height=%d exceeds %d", rect.Y+rect.Height, floorHeight-margin),
		})
	}

	return violations
}
