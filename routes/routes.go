package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"restaurant-backend/controllers"
	"restaurant-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controller instances onto the route tree.
func SetupRouter(
	fpc *controllers.FloorPlanController,
	tc *controllers.TableController,
	oc *controllers.OrderController,
	sc *controllers.StatsController,
	cc *controllers.CustomerController,
	mc *controllers.MenuController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// QR resolution sits outside /api: the path is what's printed on the
	// stickers and must never change shape.
	r.GET("/table/:floorNumber/:tableNumber", tc.ResolveQR)

	api := r.Group("/api")
	{
		floorPlans := api.Group("/floor-plans")
		{
			floorPlans.GET("", fpc.GetFloorPlans)
			floorPlans.GET("/:id", fpc.GetFloorPlan)
			floorPlans.POST("", fpc.CreateFloorPlan)
			floorPlans.PUT("/:id", fpc.UpdateFloorPlan)
			floorPlans.DELETE("/:id", fpc.DeleteFloorPlan)
		}

		tables := api.Group("/tables")
		{
			tables.GET("", tc.GetTables)
			tables.POST("/configure", tc.ConfigureTables)
			tables.POST("/preview", tc.PreviewTables)
			tables.PUT("/:id/placement", tc.UpdatePlacement)
			tables.PATCH("/:id/reservation", tc.SetReservation)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", oc.GetOrders)
			orders.POST("", oc.CreateOrder)
			orders.GET("/:id", oc.GetOrder)
			orders.POST("/:id/status", oc.AdvanceStatus)
		}

		menu := api.Group("/menu")
		{
			menu.GET("", mc.GetMenu)
			menu.POST("/categories", mc.CreateMenuCategory)
			menu.POST("/items", mc.CreateMenuItem)
			menu.PATCH("/items/:id", mc.UpdateMenuItem)
			menu.DELETE("/items/:id", mc.DeleteMenuItem)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", cc.GetCustomers)
			customers.GET("/:id", cc.GetCustomer)
			customers.POST("", cc.CreateCustomer)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/dashboard", sc.GetDashboard)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/restaurant", controllers.GetRestaurantSettings)
			settings.PUT("/restaurant", controllers.UpdateRestaurantSettings)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
		}
	}

	return r
}
