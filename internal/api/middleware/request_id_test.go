package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	return engine
}

func TestRequestID_Generated(t *testing.T) {
	engine := setupEngine()

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	id := w.Header().Get(RequestIDHeader)
	if len(id) != 36 {
		t.Errorf("Expected a UUID request id, got %q", id)
	}
	if w.Body.String() != id {
		t.Errorf("Expected handler to see %q, got %q", id, w.Body.String())
	}
}

func TestRequestID_Propagated(t *testing.T) {
	engine := setupEngine()

	req, _ := http.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "trace-123")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "trace-123" {
		t.Errorf("Expected trace-123, got %q", got)
	}
}
