package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"ridesharing/internal/api"
	"ridesharing/internal/api/handlers"
	"ridesharing/internal/config"
	"ridesharing/internal/repository/memory"
	"ridesharing/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	fareTable, err := cfg.FareTable()
	if err != nil {
		log.Fatalf("Invalid pricing configuration: %v", err)
	}

	// Initialize repositories
	rideRepo := memory.NewRideRepository()
	driverRepo := memory.NewDriverRepository()
	riderRepo := memory.NewRiderRepository()

	// Initialize services
	notificationService := services.NewNotificationService()
	fleetService := services.NewFleetService(rideRepo, driverRepo, riderRepo, fareTable, notificationService)

	// Initialize handlers
	rideHandler := handlers.NewRideHandler(fleetService)
	driverHandler := handlers.NewDriverHandler(fleetService)
	riderHandler := handlers.NewRiderHandler(fleetService)

	// Setup router
	router := api.NewRouter(rideHandler, driverHandler, riderHandler)

	engine := gin.Default()
	router.Setup(engine)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Starting ride-sharing server on %s", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
