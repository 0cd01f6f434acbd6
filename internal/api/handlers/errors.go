package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"ridesharing/internal/api/middleware"
	"ridesharing/internal/domain/entities"
	"ridesharing/internal/services"
)

// pathID parses the :id route parameter. It writes a 400 response and
// returns false when the parameter is not an integer.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}

// writeError maps service and entity errors onto HTTP status codes.
//
// Go Learning Note — errors.Is vs ==:
// Entity errors are wrapped ("invalid argument: distance must be greater
// than 0"), so comparing with == would never match. errors.Is unwraps the
// chain until it finds the sentinel.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, entities.ErrInvalidArgument), errors.Is(err, entities.ErrUnknownVariant):
		status = http.StatusBadRequest
	case services.IsNotFound(err):
		status = http.StatusNotFound
	case services.IsConflict(err):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{
		"error":      err.Error(),
		"request_id": middleware.GetRequestID(c),
	})
}

// writeJSON encodes body under the fleet's read lock, since encoding an entity
// reads its mutable state, and only then writes the response. An encoding
// failure becomes a 500 instead of a 200 with an empty body.
//
// Go Learning Note — Marshal Before Writing:
// c.JSON writes the status header first and encodes second, so a failed
// encode cannot change the status anymore. Marshaling into a byte slice up
// front keeps the error in our hands.
func writeJSON(c *gin.Context, fleet *services.FleetService, status int, body any) {
	var data []byte
	var err error
	fleet.WithReadLock(func() {
		data, err = json.Marshal(body)
	})
	if err != nil {
		writeError(c, fmt.Errorf("encode response: %w", err))
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}
