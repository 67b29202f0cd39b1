package services

// NumberingMode selects how table numbers are assigned across floors.
type NumberingMode string

const (
	// NumberingAutomatic renumbers everything as one globally increasing
	// sequence across all floors in display order.
	NumberingAutomatic NumberingMode = "automatic"
	// NumberingPreserve keeps the numbers of floors that already have
	// tables; only empty floors receive fresh automatic numbers.
	NumberingPreserve NumberingMode = "preserve"
)

// FloorTableCount is one floor's slice of a numbering request. Floors must be
// passed in the same stable order (by floor number) that the admin UI uses to
// present per-floor counts, since that order decides each floor's offset.
type FloorTableCount struct {
	FloorPlanID     uint
	FloorNumber     int
	Count           int
	ExistingNumbers []int
}

// AssignTableNumbers produces the table numbers for every floor in the
// request. Automatic mode yields one contiguous range across all floors
// starting at startingNumber. Preserve mode keeps floors that already have
// tables untouched and numbers only the empty ones, advancing the running
// counter past any kept number so nothing ever collides.
//
// All validation happens up front; no partial result is ever returned.
func AssignTableNumbers(floors []FloorTableCount, mode NumberingMode, startingNumber int) (map[uint][]int, error) {
	if startingNumber < 1 {
		return nil, &ValidationError{Field: "startingNumber", Reason: "must be at least 1"}
	}
	if mode != NumberingAutomatic && mode != NumberingPreserve {
		return nil, &ValidationError{Field: "mode", Reason: "must be automatic or preserve"}
	}
	for _, f := range floors {
		if f.Count < 1 || f.Count > MaxTablesPerFloor {
			return nil, &ValidationError{Field: "tableCount", Reason: "must be between 1 and 50 per floor"}
		}
	}

	assigned := make(map[uint][]int, len(floors))
	next := startingNumber

	for _, f := range floors {
		if mode == NumberingPreserve && len(f.ExistingNumbers) > 0 {
			kept := make([]int, len(f.ExistingNumbers))
			copy(kept, f.ExistingNumbers)
			assigned[f.FloorPlanID] = kept
			for _, n := range kept {
				if n >= next {
					next = n + 1
				}
			}
			continue
		}

		numbers := make([]int, 0, f.Count)
		for i := 0; i < f.Count; i++ {
			numbers = append(numbers, next)
			next++
		}
		assigned[f.FloorPlanID] = numbers
	}

	return assigned, nil
}
