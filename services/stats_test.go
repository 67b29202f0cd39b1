package services

import (
	"testing"
	"time"

	"restaurant-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeDashboardStatsRevenue(t *testing.T) {
	now := time.Date(2024, 6, 15, 18, 30, 0, 0, time.Local)
	yesterday := now.Add(-24 * time.Hour)

	orders := []models.Order{
		{
			Status:    models.OrderPaid,
			TableID:   1,
			CreatedAt: now.Add(-2 * time.Hour),
			Items: []models.OrderItem{
				{Price: 1200, Quantity: 2},
				{Price: 500, Quantity: 1},
			},
		},
		{
			Status:    models.OrderPaid,
			TableID:   2,
			CreatedAt: now.Add(-1 * time.Hour),
			Items: []models.OrderItem{
				{Price: 300, Quantity: 3},
			},
		},
		{
			// Paid yesterday: excluded from today's revenue, still counts
			// as a completed order.
			Status:    models.OrderPaid,
			TableID:   3,
			CreatedAt: yesterday,
			Items: []models.OrderItem{
				{Price: 9999, Quantity: 1},
			},
		},
	}

	stats := ComputeDashboardStats(orders, 10, now)

	assert.Equal(t, int64(1200*2+500*1+300*3), stats.TodaysRevenue)
	assert.Equal(t, int64(3800), stats.TodaysRevenue)
	assert.Equal(t, 3, stats.CompletedOrders)
	assert.Equal(t, 0, stats.ActiveOrders)
	assert.Equal(t, 10, stats.TotalTables)
}

func TestComputeDashboardStatsCounts(t *testing.T) {
	now := time.Now()

	orders := []models.Order{
		{Status: models.OrderPlaced, TableID: 1, CreatedAt: now},
		{Status: models.OrderUnderProcess, TableID: 2, CreatedAt: now},
		{Status: models.OrderServed, TableID: 3, CreatedAt: now},
		{Status: models.OrderCompleted, TableID: 4, CreatedAt: now},
		{Status: models.OrderPaid, TableID: 5, CreatedAt: now},
	}

	stats := ComputeDashboardStats(orders, 8, now)

	// placed/under_process/served are active; completed/paid are completed.
	assert.Equal(t, 3, stats.ActiveOrders)
	assert.Equal(t, 2, stats.CompletedOrders)
	// completed still blocks its table; paid does not.
	assert.Equal(t, 4, stats.OccupiedTables)
	assert.Equal(t, 8, stats.TotalTables)
}

func TestComputeDashboardStatsOccupiedTablesDeduped(t *testing.T) {
	now := time.Now()

	// Two active orders on the same table should be impossible upstream,
	// but the fold must still count the table once.
	orders := []models.Order{
		{Status: models.OrderPlaced, TableID: 1, CreatedAt: now},
		{Status: models.OrderServed, TableID: 1, CreatedAt: now},
		{Status: models.OrderPlaced, TableID: 2, CreatedAt: now},
	}

	stats := ComputeDashboardStats(orders, 5, now)
	assert.Equal(t, 2, stats.OccupiedTables)
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	stats := ComputeDashboardStats(nil, 12, time.Now())

	assert.Equal(t, DashboardStats{TotalTables: 12}, stats)
}

func TestComputeDashboardStatsPendingPaymentNotRevenue(t *testing.T) {
	now := time.Now()

	// Completed but unpaid: the bill exists, the money does not.
	orders := []models.Order{
		{
			Status:    models.OrderCompleted,
			TableID:   1,
			CreatedAt: now,
			Items:     []models.OrderItem{{Price: 5000, Quantity: 2}},
		},
	}

	stats := ComputeDashboardStats(orders, 3, now)
	assert.Equal(t, int64(0), stats.TodaysRevenue)
	assert.Equal(t, 1, stats.CompletedOrders)
}
