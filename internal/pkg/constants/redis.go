package constants

// Redis key formats
const (
	// Position Service
	KeyCourierSample = "position:sample:%s" // Format: position:sample:{courier_id}
	KeyCourierGeo    = "courier:geo"        // GeoHash set of latest courier positions

	// Guidance Service
	KeyNavSession = "guidance:session:%s" // Format: guidance:session:{courier_id}

	// Ping Service
	KeyOrderPing = "ping:order:%s:%s" // Format: ping:order:{to_user_id}:{order_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldFloor     = "floor"
	FieldHeading   = "heading"
	FieldAccuracy  = "accuracy"
	FieldSource    = "source"
	FieldGeohash   = "geohash"
	FieldTimestamp = "ts"
)
