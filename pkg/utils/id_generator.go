// Package utils provides small helpers shared across the application.
//
// Go Learning Note — "pkg/" Directory Convention:
// Code under pkg/ is intended to be importable by other modules, unlike
// internal/ which the compiler keeps private. It's a community convention,
// not a language feature.
package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a random RFC 4122 v4 UUID string. Entity ids in this
// system are caller-assigned integers; GenerateID is for correlation ids such
// as the X-Request-ID header, where uniqueness without coordination matters
// more than readability.
func GenerateID() string {
	return uuid.New().String()
}
