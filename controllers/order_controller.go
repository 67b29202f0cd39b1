// controllers/order_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"restaurant-backend/models"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	OrderSvc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{OrderSvc: svc}
}

// CreateOrder (POST /api/orders) opens a dining session on a table. A table
// that already has an active order answers 409 with the existing order id.
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	order, err := ctrl.OrderSvc.CreateOrder(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrders (GET /api/orders?status=&tableId=)
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))

	var tableID uint
	if raw := c.Query("tableId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid tableId"})
			return
		}
		tableID = uint(parsed)
	}

	orders, err := ctrl.OrderSvc.ListOrders(restaurantIDFromQuery(c), status, tableID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder (GET /api/orders/:id)
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	order, err := ctrl.OrderSvc.GetOrder(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type advanceStatusPayload struct {
	TargetStatus models.OrderStatus `json:"targetStatus" binding:"required"`
}

// AdvanceStatus (POST /api/orders/:id/status) moves an order one step along
// the lifecycle; the response carries the payment record once one exists.
func (ctrl *OrderController) AdvanceStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload advanceStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "targetStatus is required"})
		return
	}

	order, err := ctrl.OrderSvc.AdvanceStatus(id, payload.TargetStatus)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := gin.H{"order": order}
	if order.Payment != nil {
		resp["payment"] = order.Payment
	}
	c.JSON(http.StatusOK, resp)
}
