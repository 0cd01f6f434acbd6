// Package middleware provides HTTP middleware for the Gin router.
//
// Go Learning Note — Middleware Pattern (Gin):
// In Gin, middleware is any function with the signature `gin.HandlerFunc`, which
// is `func(*gin.Context)`. Middleware functions form a chain: each one runs,
// optionally calls c.Next() to pass control to the next handler, and can call
// c.Abort() to stop the chain. Middleware is applied with .Use() on an engine
// or route group.
package middleware

import (
	"github.com/gin-gonic/gin"
	"ridesharing/pkg/utils"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID tags every request with an id, reusing one supplied by the client
// in the X-Request-ID header or generating a UUID otherwise. The id is echoed
// in the response header and stored on the context for handlers and logs.
//
// Go Learning Note — Returning Functions (Closures):
// RequestID() returns a gin.HandlerFunc rather than being one. The outer
// function is where configuration would be captured; keeping the shape makes
// every middleware in the chain look the same at the call site.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = utils.GenerateID()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID retrieves the id stored by RequestID, or "" if the middleware
// did not run.
//
// Go Learning Note — Type Assertion:
// c.Get() returns (any, bool). The two-value form `id, _ := v.(string)` yields
// the zero value instead of panicking when v is not a string.
func GetRequestID(c *gin.Context) string {
	v, _ := c.Get(RequestIDKey)
	id, _ := v.(string)
	return id
}
