package geo

import "math"

const earthRadiusM = 6371000.0

// DistanceMeters returns the great-circle distance between two points
// given in degrees, via the haversine formula.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// IsInside reports whether the point lies within the place's safe zone.
// The boundary itself counts as inside.
func IsInside(lat, lng float64, place Place) bool {
	return DistanceMeters(lat, lng, place.Lat, place.Lng) <= place.RadiusM
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
