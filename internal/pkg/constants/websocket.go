package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Guidance events
	EventGuidanceFrame   = "guidance_frame"
	EventPositionUnknown = "position_unknown"
	EventSessionStopped  = "session_stopped"

	// Ping channel events
	EventSubscribe   = "subscribe"
	EventSubscribed  = "subscribed"
	EventUnsubscribe = "unsubscribe"
	EventOrderReady  = "order_ready"
	EventPingCleared = "ping_cleared"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorInternalError    = "internal_error"
)
