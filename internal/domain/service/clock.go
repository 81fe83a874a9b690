package service

import "time"

// Clock supplies the current time. Token expiry checks go through this
// interface so tests can travel in time deterministically.
type Clock interface {
	Now() time.Time
}
