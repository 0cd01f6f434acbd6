package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ridesharing/internal/services"
)

// DriverHandler groups the driver endpoints: registration, recording served
// rides, and the plain-text info report.
type DriverHandler struct {
	fleet *services.FleetService
}

func NewDriverHandler(fleet *services.FleetService) *DriverHandler {
	return &DriverHandler{fleet: fleet}
}

type RegisterDriverRequest struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// AssignRideRequest is shared by the driver and rider endpoints that attach a
// stored ride by id.
type AssignRideRequest struct {
	RideID int `json:"ride_id"`
}

// RegisterDriver handles POST /drivers
func (h *DriverHandler) RegisterDriver(c *gin.Context) {
	var req RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.fleet.RegisterDriver(c.Request.Context(), req.ID, req.Name, req.Rating)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, h.fleet, http.StatusCreated, driver)
}

// DriverInfo handles GET /drivers/:id
func (h *DriverHandler) DriverInfo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	info, err := h.fleet.DriverInfo(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, info)
}

// AddRide handles POST /drivers/:id/rides
func (h *DriverHandler) AddRide(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req AssignRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.fleet.AssignRide(c.Request.Context(), id, req.RideID)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, h.fleet, http.StatusOK, driver)
}
