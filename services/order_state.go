package services

import "restaurant-backend/models"

// nextStatus is the whole lifecycle: every status has exactly one legal
// successor, paid has none. Repairs and cancellations are a staff/back-office
// concern outside this machine; an order never moves backwards.
var nextStatus = map[models.OrderStatus]models.OrderStatus{
	models.OrderPlaced:       models.OrderUnderProcess,
	models.OrderUnderProcess: models.OrderServed,
	models.OrderServed:       models.OrderCompleted,
	models.OrderCompleted:    models.OrderPaid,
}

// activeStatuses are the statuses that keep a table blocked: everything up to
// and including completed. Only paid releases the table.
var activeStatuses = []models.OrderStatus{
	models.OrderPlaced,
	models.OrderUnderProcess,
	models.OrderServed,
	models.OrderCompleted,
}

// ActiveStatuses returns the statuses that count as "table is taken".
func ActiveStatuses() []models.OrderStatus {
	out := make([]models.OrderStatus, len(activeStatuses))
	copy(out, activeStatuses)
	return out
}

// IsActiveStatus reports whether an order in this status blocks its table.
func IsActiveStatus(s models.OrderStatus) bool {
	for _, a := range activeStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether s is part of the closed enumeration at all.
func IsValidStatus(s models.OrderStatus) bool {
	if s == models.OrderPaid {
		return true
	}
	_, ok := nextStatus[s]
	return ok
}

// CanTransition returns nil when to is the single legal successor of from,
// and a *TransitionError otherwise. Skipping ahead (e.g. served straight to
// paid) is never allowed: the payment amount is only finalized at completed.
func CanTransition(from, to models.OrderStatus) error {
	if succ, ok := nextStatus[from]; ok && succ == to {
		return nil
	}
	return &TransitionError{From: string(from), To: string(to)}
}
