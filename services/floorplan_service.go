package services

import (
	"errors"
	"fmt"

	"restaurant-backend/models"

	"gorm.io/gorm"
)

type FloorPlanService struct {
	DB *gorm.DB
}

func NewFloorPlanService(db *gorm.DB) *FloorPlanService {
	return &FloorPlanService{DB: db}
}

func (s *FloorPlanService) validate(plan models.FloorPlan) error {
	if plan.Width <= 0 || plan.Height <= 0 {
		return &ValidationError{Field: "dimensions", Reason: "width and height must be positive"}
	}
	// A floor narrower than clearance + one table can never hold anything.
	if plan.Width < 2*EdgeMargin+defaultTableWidth || plan.Height < 2*EdgeMargin+defaultTableHeight {
		return &ValidationError{Field: "dimensions", Reason: fmt.Sprintf("floor must be at least %dx%d grid units",
			2*EdgeMargin+defaultTableWidth, 2*EdgeMargin+defaultTableHeight)}
	}
	if plan.FloorNumber < 1 {
		return &ValidationError{Field: "floorNumber", Reason: "must be at least 1"}
	}
	return nil
}

func (s *FloorPlanService) Create(plan models.FloorPlan) (models.FloorPlan, error) {
	if err := s.validate(plan); err != nil {
		return models.FloorPlan{}, err
	}
	if err := s.DB.Create(&plan).Error; err != nil {
		if isDuplicateKey(err) {
			return models.FloorPlan{}, &ConflictError{
				Resource: "floor_plan",
				Reason:   fmt.Sprintf("floor number %d already exists", plan.FloorNumber),
			}
		}
		return models.FloorPlan{}, err
	}
	return plan, nil
}

func (s *FloorPlanService) GetAll(restaurantID uint) ([]models.FloorPlan, error) {
	var plans []models.FloorPlan
	err := s.DB.Preload("TableConfigs").
		Where("restaurant_id = ?", restaurantID).
		Order("floor_number").
		Find(&plans).Error
	return plans, err
}

func (s *FloorPlanService) GetByID(id uint) (models.FloorPlan, error) {
	var plan models.FloorPlan
	if err := s.DB.Preload("TableConfigs").First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FloorPlan{}, fmt.Errorf("floor plan %d: %w", id, ErrNotFound)
		}
		return models.FloorPlan{}, err
	}
	return plan, nil
}

// floorPlanUpdates builds the column map for an edit. A map, not the
// struct: gorm skips zero-valued struct fields, which would make
// IsActive=false or a cleared name silently not persist.
func floorPlanUpdates(plan models.FloorPlan) map[string]interface{} {
	return map[string]interface{}{
		"floor_number": plan.FloorNumber,
		"name":         plan.Name,
		"width":        plan.Width,
		"height":       plan.Height,
		"is_active":    plan.IsActive,
	}
}

func (s *FloorPlanService) Update(plan models.FloorPlan) error {
	if err := s.validate(plan); err != nil {
		return err
	}
	return s.DB.Model(&models.FloorPlan{}).Where("id = ?", plan.ID).Updates(floorPlanUpdates(plan)).Error
}

// Delete removes a floor plan together with its table configs and tables.
// One transaction: the floor either disappears whole or not at all.
func (s *FloorPlanService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var plan models.FloorPlan
		if err := tx.First(&plan, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("floor plan %d: %w", id, ErrNotFound)
			}
			return err
		}

		var tableIDs []uint
		if err := tx.Model(&models.TableConfig{}).
			Where("floor_plan_id = ?", id).
			Pluck("table_id", &tableIDs).Error; err != nil {
			return err
		}
		// Hard delete so freed table numbers can be reassigned later.
		if err := tx.Unscoped().Where("floor_plan_id = ?", id).Delete(&models.TableConfig{}).Error; err != nil {
			return err
		}
		if len(tableIDs) > 0 {
			if err := tx.Unscoped().Where("id IN ?", tableIDs).Delete(&models.Table{}).Error; err != nil {
				return err
			}
		}

		return tx.Unscoped().Delete(&models.FloorPlan{}, id).Error
	})
}
