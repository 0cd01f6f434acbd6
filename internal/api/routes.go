package api

import (
	"github.com/gin-gonic/gin"
	"ridesharing/internal/api/handlers"
	"ridesharing/internal/api/middleware"
)

type Router struct {
	rideHandler   *handlers.RideHandler
	driverHandler *handlers.DriverHandler
	riderHandler  *handlers.RiderHandler
}

func NewRouter(
	rideHandler *handlers.RideHandler,
	driverHandler *handlers.DriverHandler,
	riderHandler *handlers.RiderHandler,
) *Router {
	return &Router{
		rideHandler:   rideHandler,
		driverHandler: driverHandler,
		riderHandler:  riderHandler,
	}
}

func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.RequestID())

	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	rides := engine.Group("/rides")
	{
		rides.POST("", r.rideHandler.CreateRide)
		rides.GET("", r.rideHandler.ListRides)
		rides.GET("/:id", r.rideHandler.GetRide)
		rides.POST("/:id/fare", r.rideHandler.CalculateFare)
		rides.GET("/:id/details", r.rideHandler.DescribeRide)
	}

	drivers := engine.Group("/drivers")
	{
		drivers.POST("", r.driverHandler.RegisterDriver)
		drivers.GET("/:id", r.driverHandler.DriverInfo)
		drivers.POST("/:id/rides", r.driverHandler.AddRide)
	}

	riders := engine.Group("/riders")
	{
		riders.POST("", r.riderHandler.RegisterRider)
		riders.POST("/:id/rides", r.riderHandler.RequestRide)
		riders.GET("/:id/rides", r.riderHandler.ViewRides)
	}
}
