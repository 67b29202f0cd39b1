package services

import (
	"time"

	"restaurant-backend/models"

	"gorm.io/gorm"
)

// DashboardStats is the staff dashboard snapshot. Revenue is in minor
// currency units.
type DashboardStats struct {
	ActiveOrders    int   `json:"activeOrders"`
	CompletedOrders int   `json:"completedOrders"`
	OccupiedTables  int   `json:"occupiedTables"`
	TotalTables     int   `json:"totalTables"`
	TodaysRevenue   int64 `json:"todaysRevenue"`
}

// ComputeDashboardStats folds a restaurant's orders into dashboard numbers.
// Pure: recomputed from scratch on every call, so the numbers can never
// drift the way incremental counters do. Orders must have Items preloaded
// for revenue to be correct.
//
// occupiedTables counts distinct tables holding an order in an active
// status; a table with two active orders (which the conflict guard should
// make impossible) still counts once.
func ComputeDashboardStats(orders []models.Order, totalTables int, now time.Time) DashboardStats {
	stats := DashboardStats{TotalTables: totalTables}

	year, month, day := now.Date()
	occupied := make(map[uint]struct{})

	for _, o := range orders {
		switch o.Status {
		case models.OrderPlaced, models.OrderUnderProcess, models.OrderServed:
			stats.ActiveOrders++
		case models.OrderCompleted, models.OrderPaid:
			stats.CompletedOrders++
		}

		if IsActiveStatus(o.Status) {
			occupied[o.TableID] = struct{}{}
		}

		if o.Status == models.OrderPaid {
			oy, om, od := o.CreatedAt.In(now.Location()).Date()
			if oy == year && om == month && od == day {
				stats.TodaysRevenue += OrderTotal(o.Items)
			}
		}
	}

	stats.OccupiedTables = len(occupied)
	return stats
}

// StatsService answers dashboard queries by loading the restaurant's orders
// and tables and folding them with ComputeDashboardStats.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

func (s *StatsService) Dashboard(restaurantID uint) (DashboardStats, error) {
	var orders []models.Order
	if err := s.DB.Preload("Items").
		Where("restaurant_id = ?", restaurantID).
		Find(&orders).Error; err != nil {
		return DashboardStats{}, err
	}

	var totalTables int64
	if err := s.DB.Model(&models.Table{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&totalTables).Error; err != nil {
		return DashboardStats{}, err
	}

	return ComputeDashboardStats(orders, int(totalTables), time.Now()), nil
}
