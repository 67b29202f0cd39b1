package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"restaurant-backend/models"

	"gorm.io/gorm"
)

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

// Categories returns a restaurant's menu in display order. availableOnly
// narrows items to what customers can actually order right now.
func (s *MenuService) Categories(restaurantID uint, availableOnly bool) ([]models.MenuCategory, error) {
	q := s.DB.Where("restaurant_id = ?", restaurantID).Order("display_order")
	if availableOnly {
		q = q.Preload("Items", "is_available = ?", true)
	} else {
		q = q.Preload("Items")
	}

	var categories []models.MenuCategory
	err := q.Find(&categories).Error
	return categories, err
}

func (s *MenuService) CreateCategory(category models.MenuCategory) (models.MenuCategory, error) {
	if category.Name == "" {
		return models.MenuCategory{}, &ValidationError{Field: "name", Reason: "required"}
	}
	err := s.DB.Create(&category).Error
	return category, err
}

func (s *MenuService) CreateItem(item models.MenuItem) (models.MenuItem, error) {
	if item.Name == "" {
		return models.MenuItem{}, &ValidationError{Field: "name", Reason: "required"}
	}
	if item.Price < 0 {
		return models.MenuItem{}, &ValidationError{Field: "price", Reason: "must not be negative"}
	}

	var category models.MenuCategory
	if err := s.DB.First(&category, item.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, &ValidationError{Field: "categoryId", Reason: "category does not exist"}
		}
		return models.MenuItem{}, err
	}

	err := s.DB.Create(&item).Error
	return item, err
}

// sanitizeItemUpdates strips columns a PATCH may never touch and applies the
// same price guard CreateItem enforces; a negative price patched in here
// would get snapshotted into every future order item.
func sanitizeItemUpdates(updates map[string]interface{}) (map[string]interface{}, error) {
	delete(updates, "id")
	delete(updates, "created_at")

	raw, ok := updates["price"]
	if !ok {
		return updates, nil
	}

	var price int64
	switch v := raw.(type) {
	case float64: // what encoding/json hands gin for any number
		price = int64(v)
	case int:
		price = int64(v)
	case int64:
		price = v
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return nil, &ValidationError{Field: "price", Reason: "must be an integer amount in minor units"}
		}
		price = parsed
	default:
		return nil, &ValidationError{Field: "price", Reason: "must be an integer amount in minor units"}
	}

	if price < 0 {
		return nil, &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	updates["price"] = price
	return updates, nil
}

// UpdateItemFields applies a partial edit to a menu item. Prices already
// captured on order items are never rewritten by this.
func (s *MenuService) UpdateItemFields(id uint, updates map[string]interface{}) (models.MenuItem, error) {
	updates, err := sanitizeItemUpdates(updates)
	if err != nil {
		return models.MenuItem{}, err
	}

	var item models.MenuItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, fmt.Errorf("menu item %d: %w", id, ErrNotFound)
		}
		return models.MenuItem{}, err
	}

	if err := s.DB.Model(&item).Updates(updates).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *MenuService) GetItem(id uint) (models.MenuItem, error) {
	var item models.MenuItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, fmt.Errorf("menu item %d: %w", id, ErrNotFound)
		}
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *MenuService) DeleteItem(id uint) error {
	return s.DB.Delete(&models.MenuItem{}, id).Error
}
