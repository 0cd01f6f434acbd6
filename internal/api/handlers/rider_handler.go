package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ridesharing/internal/services"
)

type RiderHandler struct {
	fleet *services.FleetService
}

func NewRiderHandler(fleet *services.FleetService) *RiderHandler {
	return &RiderHandler{fleet: fleet}
}

type RegisterRiderRequest struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RegisterRider handles POST /riders
func (h *RiderHandler) RegisterRider(c *gin.Context) {
	var req RegisterRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rider, err := h.fleet.RegisterRider(c.Request.Context(), req.ID, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, h.fleet, http.StatusCreated, rider)
}

// RequestRide handles POST /riders/:id/rides
func (h *RiderHandler) RequestRide(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req AssignRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rider, err := h.fleet.RequestRide(c.Request.Context(), id, req.RideID)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, h.fleet, http.StatusOK, rider)
}

// ViewRides handles GET /riders/:id/rides
func (h *RiderHandler) ViewRides(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.fleet.ViewRides(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, view)
}
