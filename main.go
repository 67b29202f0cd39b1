package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"restaurant-backend/config"
	"restaurant-backend/controllers"
	"restaurant-backend/routes"
	"restaurant-backend/services"
	"restaurant-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied")

	// Services
	floorPlanService := services.NewFloorPlanService(db)
	tableService := services.NewTableService(db)
	orderService := services.NewOrderService(db, services.StubGateway{})
	statsService := services.NewStatsService(db)
	customerService := services.NewCustomerService(db)
	menuService := services.NewMenuService(db)

	// Controllers
	floorPlanController := controllers.NewFloorPlanController(floorPlanService)
	tableController := controllers.NewTableController(tableService, orderService)
	orderController := controllers.NewOrderController(orderService)
	statsController := controllers.NewStatsController(statsService)
	customerController := controllers.NewCustomerController(customerService)
	menuController := controllers.NewMenuController(menuService)

	router := routes.SetupRouter(
		floorPlanController,
		tableController,
		orderController,
		statsController,
		customerController,
		menuController,
	)

	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
