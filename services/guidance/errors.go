package guidance

import "errors"

// ErrSessionNotFound is returned when a courier has no active session
var ErrSessionNotFound = errors.New("navigation session not found")
