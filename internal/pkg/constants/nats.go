package constants

// NATS Subjects
const (
	// Venue indoor positioning feed (published by the IPS bridge)
	SubjectIPSReading = "venue.ips.reading"

	// Position Service
	SubjectPositionSample = "position.sample"
	SubjectPositionNoFix  = "position.nofix"

	// Ping Service
	SubjectPingCreated = "ping.created"
	SubjectPingCleared = "ping.cleared"
)

// NATS queue groups. Sample and no-fix consumers stay out of queue
// groups because delivery targets an instance-local WebSocket; only
// the IPS ingest load-balances.
const (
	QueuePosition = "position"
)
