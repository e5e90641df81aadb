package models

import (
	"time"
)

// Now returns the current time in UTC. All stored and published
// timestamps go through here so instants compare across services.
func Now() time.Time {
	return time.Now().UTC()
}
