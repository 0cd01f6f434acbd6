package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ridesharing/internal/domain/entities"
	"ridesharing/internal/services"
)

type RideHandler struct {
	fleet *services.FleetService
}

func NewRideHandler(fleet *services.FleetService) *RideHandler {
	return &RideHandler{fleet: fleet}
}

// CreateRideRequest is the JSON body for POST /rides. Distance carries no
// binding rule on purpose: a non-positive distance must reach the entity so
// it is rejected with the domain's invalid-argument error.
type CreateRideRequest struct {
	ID       int     `json:"id"`
	Pickup   string  `json:"pickup"`
	Dropoff  string  `json:"dropoff"`
	Distance float64 `json:"distance"`
	Variant  string  `json:"variant"`
}

// CreateRide handles POST /rides
func (h *RideHandler) CreateRide(c *gin.Context) {
	var req CreateRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ride, err := h.fleet.CreateRide(c.Request.Context(), services.CreateRideRequest{
		ID:       req.ID,
		Pickup:   req.Pickup,
		Dropoff:  req.Dropoff,
		Distance: req.Distance,
		Variant:  entities.RideVariant(req.Variant),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	writeJSON(c, h.fleet, http.StatusCreated, ride)
}

// ListRides handles GET /rides
func (h *RideHandler) ListRides(c *gin.Context) {
	rides, err := h.fleet.ListRides(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, h.fleet, http.StatusOK, gin.H{"rides": rides})
}

// GetRide handles GET /rides/:id
func (h *RideHandler) GetRide(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ride, err := h.fleet.GetRide(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, h.fleet, http.StatusOK, ride)
}

// CalculateFare handles POST /rides/:id/fare
func (h *RideHandler) CalculateFare(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ride, err := h.fleet.CalculateFare(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	writeJSON(c, h.fleet, http.StatusOK, ride)
}

// DescribeRide handles GET /rides/:id/details
func (h *RideHandler) DescribeRide(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	details, err := h.fleet.DescribeRide(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, details)
}
