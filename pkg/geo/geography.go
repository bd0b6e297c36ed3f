package geo

import "math"

// Mean earth radius in meters
const EarthRadius = 6371e3

// Commute constants (minutes and meters/minute). They are tuned against observed trips, keep them as they are.
const (
	WalkingSpeed     = 60.0
	CyclingSpeed     = 150.0
	WalkingThreshold = 100.0 // Up to this distance (meters) students walk
	BikeOverhead     = 1.0   // Picking up and parking a bike
	FloorTime        = 0.25  // One floor up or down
	RoomExitTime     = 1.0   // Packing up and leaving a room
	RemoteTransition = 2.0   // Leaving or joining a remote session
	radiansPerDegree = math.Pi / 180
)

// Returns the latitude and longitude components (meters) of the rectilinear distance between two coordinates.
// The longitude component is measured on the parallel closer to a pole, where meridians converge the most.
func Components(lon1, lat1, lon2, lat2 float64) (latMeters, lonMeters float64) {
	lat1Rad, lat2Rad := lat1*radiansPerDegree, lat2*radiansPerDegree
	lon1Rad, lon2Rad := lon1*radiansPerDegree, lon2*radiansPerDegree

	deltaLat := math.Abs(lat1Rad - lat2Rad)
	deltaLon := math.Abs(lon1Rad - lon2Rad)
	deltaLon = math.Min(deltaLon, 2*math.Pi-deltaLon) // Take the shorter way around

	latMeters = deltaLat * EarthRadius
	lonMeters = deltaLon * EarthRadius * math.Cos(math.Max(math.Abs(lat1Rad), math.Abs(lat2Rad)))
	return latMeters, lonMeters
}

// Distance returns the rectilinear distance in meters between the entrances of two buildings
func Distance(a, b *Building) float64 {
	latMeters, lonMeters := Components(a.Longitude, a.Latitude, b.Longitude, b.Latitude)
	return latMeters + lonMeters
}

// Expected minutes to get from one building to another one on the same campus
func localCommute(distance float64) float64 {
	if distance <= WalkingThreshold {
		return distance / WalkingSpeed
	}
	// Bikes approach full speed on longer trips
	return distance/CyclingSpeed - 12/(distance/100+3) + 4 + BikeOverhead
}
