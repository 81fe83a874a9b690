// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"tasker/internal/domain/service"
)

// systemClock reads the real wall clock.
type systemClock struct{}

// NewSystemClock returns the Clock used outside of tests.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
