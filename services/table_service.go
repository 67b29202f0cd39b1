// services/table_service.go
package services

import (
	"errors"
	"fmt"
	"sort"

	"restaurant-backend/models"
	"restaurant-backend/utils"

	"gorm.io/gorm"
)

// TableService orchestrates floor-plan table generation: numbering, grid
// allocation, and the transactional swap of a floor's tables.
type TableService struct {
	DB *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{DB: db}
}

type FloorCountRequest struct {
	FloorPlanID uint `json:"floorPlanId" binding:"required"`
	TableCount  int  `json:"tableCount" binding:"required"`
}

type ConfigureTablesRequest struct {
	RestaurantID   uint                `json:"restaurantId"`
	Mode           NumberingMode       `json:"mode"`
	StartingNumber int                 `json:"startingNumber"`
	Floors         []FloorCountRequest `json:"floors" binding:"required"`
}

// GeneratedTable is one row of a configure/preview response.
type GeneratedTable struct {
	TableNumber int            `json:"tableNumber"`
	FloorNumber int            `json:"floorNumber"`
	QRCodeURL   string         `json:"qrCodeUrl"`
	Config      TablePlacement `json:"tableConfig"`
}

// ConfigureFloorTables regenerates tables for the requested floors.
//
// Numbering and per-floor layout are validated before any write. Each floor
// is then swapped inside its own transaction: delete that floor's tables and
// configs, insert the fresh set. A failure mid-way leaves earlier floors
// committed and the failing floor rolled back — the operation is per-floor
// atomic, not restaurant-wide atomic.
//
// In preserve mode, floors that already have tables are left completely
// untouched; only empty floors are generated.
func (s *TableService) ConfigureFloorTables(req ConfigureTablesRequest) ([]GeneratedTable, error) {
	if len(req.Floors) == 0 {
		return nil, &ValidationError{Field: "floors", Reason: "at least one floor is required"}
	}
	mode := req.Mode
	if mode == "" {
		mode = NumberingAutomatic
	}
	start := req.StartingNumber
	if start == 0 {
		start = 1
	}

	plans, counts, err := s.loadFloors(req.RestaurantID, req.Floors)
	if err != nil {
		return nil, err
	}

	numbers, err := AssignTableNumbers(counts, mode, start)
	if err != nil {
		return nil, err
	}

	// Validate every floor's layout up front so an overflow on floor 3
	// rejects the request before floor 1 is touched.
	layouts := make(map[uint][]TablePlacement, len(plans))
	for i, plan := range plans {
		if mode == NumberingPreserve && len(counts[i].ExistingNumbers) > 0 {
			continue
		}
		placements, err := GenerateLayout(plan, counts[i].Count)
		if err != nil {
			return nil, err
		}
		layouts[plan.ID] = placements
	}

	var result []GeneratedTable
	for _, plan := range plans {
		placements, regenerate := layouts[plan.ID]
		if !regenerate {
			continue
		}
		created, err := s.regenerateFloor(plan, placements, numbers[plan.ID])
		if err != nil {
			return result, err
		}
		result = append(result, created...)
	}

	return result, nil
}

// PreviewLayout runs numbering and allocation without touching storage, so
// the admin UI can render the grid before committing.
func (s *TableService) PreviewLayout(req ConfigureTablesRequest) ([]GeneratedTable, error) {
	if len(req.Floors) == 0 {
		return nil, &ValidationError{Field: "floors", Reason: "at least one floor is required"}
	}
	mode := req.Mode
	if mode == "" {
		mode = NumberingAutomatic
	}
	start := req.StartingNumber
	if start == 0 {
		start = 1
	}

	plans, counts, err := s.loadFloors(req.RestaurantID, req.Floors)
	if err != nil {
		return nil, err
	}
	numbers, err := AssignTableNumbers(counts, mode, start)
	if err != nil {
		return nil, err
	}

	var result []GeneratedTable
	for i, plan := range plans {
		if mode == NumberingPreserve && len(counts[i].ExistingNumbers) > 0 {
			continue
		}
		placements, err := GenerateLayout(plan, counts[i].Count)
		if err != nil {
			return nil, err
		}
		for i, p := range placements {
			num := numbers[plan.ID][i]
			result = append(result, GeneratedTable{
				TableNumber: num,
				FloorNumber: plan.FloorNumber,
				QRCodeURL:   utils.TableQRCodeURL(plan.FloorNumber, num),
				Config:      p,
			})
		}
	}
	return result, nil
}

// loadFloors resolves the request's floor plans and their existing table
// numbers, ordered by floor number — the same order the admin UI lists
// floors in, which is what decides each floor's numbering offset. The
// returned slices are index-aligned.
func (s *TableService) loadFloors(restaurantID uint, reqs []FloorCountRequest) ([]models.FloorPlan, []FloorTableCount, error) {
	countByID := make(map[uint]int, len(reqs))
	ids := make([]uint, 0, len(reqs))
	for _, fr := range reqs {
		if _, dup := countByID[fr.FloorPlanID]; dup {
			return nil, nil, &ValidationError{Field: "floors", Reason: fmt.Sprintf("floor plan %d listed twice", fr.FloorPlanID)}
		}
		countByID[fr.FloorPlanID] = fr.TableCount
		ids = append(ids, fr.FloorPlanID)
	}

	var plans []models.FloorPlan
	if err := s.DB.Where("restaurant_id = ? AND id IN ?", restaurantID, ids).
		Find(&plans).Error; err != nil {
		return nil, nil, err
	}
	if len(plans) != len(ids) {
		return nil, nil, fmt.Errorf("one or more floor plans: %w", ErrNotFound)
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].FloorNumber < plans[j].FloorNumber })

	counts := make([]FloorTableCount, 0, len(plans))
	for _, plan := range plans {
		var existing []int
		if err := s.DB.Model(&models.Table{}).
			Where("restaurant_id = ? AND floor_number = ?", restaurantID, plan.FloorNumber).
			Order("table_number").
			Pluck("table_number", &existing).Error; err != nil {
			return nil, nil, err
		}
		counts = append(counts, FloorTableCount{
			FloorPlanID:     plan.ID,
			FloorNumber:     plan.FloorNumber,
			Count:           countByID[plan.ID],
			ExistingNumbers: existing,
		})
	}

	return plans, counts, nil
}

// regenerateFloor swaps one floor's tables inside a single transaction.
func (s *TableService) regenerateFloor(plan models.FloorPlan, placements []TablePlacement, numbers []int) ([]GeneratedTable, error) {
	var created []GeneratedTable

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var oldIDs []uint
		if err := tx.Model(&models.Table{}).
			Where("restaurant_id = ? AND floor_number = ?", plan.RestaurantID, plan.FloorNumber).
			Pluck("id", &oldIDs).Error; err != nil {
			return err
		}
		// Hard delete: a soft-deleted row would keep holding its unique
		// table number and block the replacement insert.
		if len(oldIDs) > 0 {
			if err := tx.Unscoped().Where("table_id IN ?", oldIDs).Delete(&models.TableConfig{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("id IN ?", oldIDs).Delete(&models.Table{}).Error; err != nil {
				return err
			}
		}

		for i, p := range placements {
			num := numbers[i]
			table := models.Table{
				RestaurantID: plan.RestaurantID,
				TableNumber:  num,
				FloorNumber:  plan.FloorNumber,
				Status:       models.TableAvailable,
				QRCodeURL:    utils.TableQRCodeURL(plan.FloorNumber, num),
			}
			if err := tx.Create(&table).Error; err != nil {
				if isDuplicateKey(err) {
					return &ConflictError{
						Resource: "table",
						Reason:   fmt.Sprintf("table number %d already exists in this restaurant", num),
					}
				}
				return err
			}

			config := models.TableConfig{
				TableID:     table.ID,
				FloorPlanID: plan.ID,
				XPosition:   p.Rect.X,
				YPosition:   p.Rect.Y,
				Width:       p.Rect.Width,
				Height:      p.Rect.Height,
				Shape:       p.Shape,
				Seats:       p.Seats,
				IsActive:    true,
			}
			if err := tx.Create(&config).Error; err != nil {
				return err
			}

			created = append(created, GeneratedTable{
				TableNumber: num,
				FloorNumber: plan.FloorNumber,
				QRCodeURL:   table.QRCodeURL,
				Config:      p,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdatePlacement applies a manual position/size edit to one table's config
// after checking it against the floor's bounds.
func (s *TableService) UpdatePlacement(tableID uint, rect Rect, shape models.TableShape, seats int) (models.TableConfig, error) {
	if rect.Width < 1 || rect.Height < 1 {
		return models.TableConfig{}, &ValidationError{Field: "size", Reason: "width and height must be at least 1"}
	}
	if seats < 1 {
		return models.TableConfig{}, &ValidationError{Field: "seats", Reason: "must be at least 1"}
	}

	var config models.TableConfig
	if err := s.DB.Where("table_id = ?", tableID).First(&config).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TableConfig{}, fmt.Errorf("table config for table %d: %w", tableID, ErrNotFound)
		}
		return models.TableConfig{}, err
	}

	var plan models.FloorPlan
	if err := s.DB.First(&plan, config.FloorPlanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TableConfig{}, fmt.Errorf("floor plan %d: %w", config.FloorPlanID, ErrNotFound)
		}
		return models.TableConfig{}, err
	}

	if violations := ValidatePlacement(rect, plan.Width, plan.Height, EdgeMargin); len(violations) > 0 {
		return models.TableConfig{}, &ValidationError{Field: "placement", Reason: violations[0].Message}
	}

	updates := map[string]interface{}{
		"x_position": rect.X,
		"y_position": rect.Y,
		"width":      rect.Width,
		"height":     rect.Height,
		"seats":      seats,
	}
	if shape != "" {
		updates["shape"] = shape
	}
	if err := s.DB.Model(&config).Updates(updates).Error; err != nil {
		return models.TableConfig{}, err
	}

	return config, nil
}

// SetReservation flips a table between available and reserved. Occupied is
// owned by the order lifecycle and cannot be set here.
func (s *TableService) SetReservation(tableID uint, reserved bool) (models.Table, error) {
	var table models.Table
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&table, tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("table %d: %w", tableID, ErrNotFound)
			}
			return err
		}
		if table.Status == models.TableOccupied {
			return &ConflictError{Resource: "table", Reason: "table is occupied by an active order"}
		}

		status := models.TableAvailable
		if reserved {
			status = models.TableReserved
		}
		if err := tx.Model(&table).Update("status", status).Error; err != nil {
			return err
		}
		table.Status = status
		return nil
	})
	return table, err
}

// ResolveByQR maps a scanned (floorNumber, tableNumber) pair back to the
// table, the lookup behind /table/{floor}/{number} QR codes.
func (s *TableService) ResolveByQR(restaurantID uint, floorNumber, tableNumber int) (models.Table, error) {
	var table models.Table
	err := s.DB.Preload("Config").
		Where("restaurant_id = ? AND floor_number = ? AND table_number = ?", restaurantID, floorNumber, tableNumber).
		First(&table).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Table{}, fmt.Errorf("table %d on floor %d: %w", tableNumber, floorNumber, ErrNotFound)
		}
		return models.Table{}, err
	}
	return table, nil
}

// ListTables returns a restaurant's tables with their placements, ordered by
// table number.
func (s *TableService) ListTables(restaurantID uint) ([]models.Table, error) {
	var tables []models.Table
	err := s.DB.Preload("Config").
		Where("restaurant_id = ?", restaurantID).
		Order("table_number").
		Find(&tables).Error
	return tables, err
}
