// controllers/floorplan_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"restaurant-backend/models"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

type FloorPlanController struct {
	FloorPlanSvc *services.FloorPlanService
}

func NewFloorPlanController(svc *services.FloorPlanService) *FloorPlanController {
	return &FloorPlanController{FloorPlanSvc: svc}
}

// restaurantIDFromQuery reads ?restaurantId=, defaulting to the single
// seeded restaurant.
func restaurantIDFromQuery(c *gin.Context) uint {
	raw := c.DefaultQuery("restaurantId", "1")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 1
	}
	return uint(id)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

type floorPlanPayload struct {
	FloorNumber int    `json:"floorNumber" binding:"required"`
	Name        string `json:"name"`
	Width       int    `json:"width" binding:"required"`
	Height      int    `json:"height" binding:"required"`
	IsActive    *bool  `json:"isActive"`
}

// GetFloorPlans (GET /api/floor-plans)
func (ctrl *FloorPlanController) GetFloorPlans(c *gin.Context) {
	plans, err := ctrl.FloorPlanSvc.GetAll(restaurantIDFromQuery(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetFloorPlan (GET /api/floor-plans/:id)
func (ctrl *FloorPlanController) GetFloorPlan(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	plan, err := ctrl.FloorPlanSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CreateFloorPlan (POST /api/floor-plans)
func (ctrl *FloorPlanController) CreateFloorPlan(c *gin.Context) {
	var payload floorPlanPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	plan := models.FloorPlan{
		RestaurantID: restaurantIDFromQuery(c),
		FloorNumber:  payload.FloorNumber,
		Name:         payload.Name,
		Width:        payload.Width,
		Height:       payload.Height,
		IsActive:     true,
	}
	if payload.IsActive != nil {
		plan.IsActive = *payload.IsActive
	}

	created, err := ctrl.FloorPlanSvc.Create(plan)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateFloorPlan (PUT /api/floor-plans/:id)
func (ctrl *FloorPlanController) UpdateFloorPlan(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload floorPlanPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	plan, err := ctrl.FloorPlanSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	plan.FloorNumber = payload.FloorNumber
	plan.Name = payload.Name
	plan.Width = payload.Width
	plan.Height = payload.Height
	if payload.IsActive != nil {
		plan.IsActive = *payload.IsActive
	}

	if err := ctrl.FloorPlanSvc.Update(plan); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeleteFloorPlan (DELETE /api/floor-plans/:id) — cascades the floor's
// table configs and tables.
func (ctrl *FloorPlanController) DeleteFloorPlan(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.FloorPlanSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
