// controllers/table_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"restaurant-backend/models"
	"restaurant-backend/services"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	TableSvc *services.TableService
	OrderSvc *services.OrderService
}

func NewTableController(tableSvc *services.TableService, orderSvc *services.OrderService) *TableController {
	return &TableController{TableSvc: tableSvc, OrderSvc: orderSvc}
}

// GetTables (GET /api/tables)
func (ctrl *TableController) GetTables(c *gin.Context) {
	tables, err := ctrl.TableSvc.ListTables(restaurantIDFromQuery(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

// ConfigureTables (POST /api/tables/configure) regenerates the requested
// floors' tables: numbering + grid layout + transactional swap per floor.
func (ctrl *TableController) ConfigureTables(c *gin.Context) {
	var req services.ConfigureTablesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}
	if req.RestaurantID == 0 {
		req.RestaurantID = restaurantIDFromQuery(c)
	}

	tables, err := ctrl.TableSvc.ConfigureFloorTables(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tables": tables})
}

// PreviewTables (POST /api/tables/preview) is ConfigureTables without the
// writes; same request, same deterministic layout.
func (ctrl *TableController) PreviewTables(c *gin.Context) {
	var req services.ConfigureTablesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}
	if req.RestaurantID == 0 {
		req.RestaurantID = restaurantIDFromQuery(c)
	}

	tables, err := ctrl.TableSvc.PreviewLayout(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": tables})
}

type placementPayload struct {
	XPosition int               `json:"xPosition"`
	YPosition int               `json:"yPosition"`
	Width     int               `json:"width" binding:"required"`
	Height    int               `json:"height" binding:"required"`
	Shape     models.TableShape `json:"shape"`
	Seats     int               `json:"seats" binding:"required"`
}

// UpdatePlacement (PUT /api/tables/:id/placement) applies a manual drag/
// resize from the floor editor, geometry-checked against the floor bounds.
func (ctrl *TableController) UpdatePlacement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload placementPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	rect := services.Rect{
		X:      payload.XPosition,
		Y:      payload.YPosition,
		Width:  payload.Width,
		Height: payload.Height,
	}
	config, err := ctrl.TableSvc.UpdatePlacement(id, rect, payload.Shape, payload.Seats)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

type reservationPayload struct {
	Reserved *bool `json:"reserved" binding:"required"`
}

// SetReservation (PATCH /api/tables/:id/reservation)
func (ctrl *TableController) SetReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload reservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Reserved == nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "reserved flag is required"})
		return
	}

	table, err := ctrl.TableSvc.SetReservation(id, *payload.Reserved)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

// ResolveQR (GET /table/:floorNumber/:tableNumber) is the endpoint behind
// the printed QR codes: it resolves the scanned pair to the table and, when
// one exists, the table's active order.
func (ctrl *TableController) ResolveQR(c *gin.Context) {
	floorNumber, err := strconv.Atoi(c.Param("floorNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid floor number"})
		return
	}
	tableNumber, err := strconv.Atoi(c.Param("tableNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid table number"})
		return
	}

	table, err := ctrl.TableSvc.ResolveByQR(restaurantIDFromQuery(c), floorNumber, tableNumber)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := gin.H{"table": table}
	if active, err := ctrl.OrderSvc.ActiveOrderForTable(table.ID); err == nil {
		resp["activeOrder"] = active
	}
	c.JSON(http.StatusOK, resp)
}
