package controllers

import (
	"net/http"

	"restaurant-backend/models"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	MenuSvc *services.MenuService
}

func NewMenuController(menuSvc *services.MenuService) *MenuController {
	return &MenuController{MenuSvc: menuSvc}
}

// GetMenu (GET /api/menu) returns categories with their available items, in
// display order, for the customer-facing menu.
func (mc *MenuController) GetMenu(c *gin.Context) {
	categories, err := mc.MenuSvc.Categories(restaurantIDFromQuery(c), true)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateMenuCategory (POST /api/menu/categories)
func (mc *MenuController) CreateMenuCategory(c *gin.Context) {
	var category models.MenuCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}
	if category.RestaurantID == 0 {
		category.RestaurantID = restaurantIDFromQuery(c)
	}

	created, err := mc.MenuSvc.CreateCategory(category)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CreateMenuItem (POST /api/menu/items) — price arrives in minor currency
// units and is stored as-is.
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	created, err := mc.MenuSvc.CreateItem(item)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateMenuItem (PATCH /api/menu/items/:id) — note a price edit here never
// rewrites prices already captured on order items.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	item, err := mc.MenuSvc.UpdateItemFields(id, updateData)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem (DELETE /api/menu/items/:id)
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := mc.MenuSvc.DeleteItem(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
