package utils

// ValidateCoordinates checks that a lat/lng pair is within WGS84 bounds.
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ValidateRadius checks a search radius in meters.
func ValidateRadius(radiusMeters int) bool {
	return radiusMeters > 0 && radiusMeters <= 50000
}
