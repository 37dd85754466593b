package domain

import "math"

// ProximityThresholdMeters incident closer than this escalate the advisory
const ProximityThresholdMeters = 2000

// earthRadiusMeters equatorial radius, same constant used by common geo distance libraries
const earthRadiusMeters = 6378137

// TrafficFeed incident feed
type TrafficFeed struct {
	Events []Incident `json:"events"`
}

// Incident current traffic event, head is where the incident start
type Incident struct {
	ID   int64     `json:"id,omitempty"`
	Head *Location `json:"head"`
}

// Location of incident, longitude is named "lng" by the feed
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TrafficAdvisory derived fresh per request
type TrafficAdvisory struct {
	Message string `json:"message"`
}

// DistanceMeters great circle distance using haversine formula
func DistanceMeters(from Coordinates, to Location) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(to.Lat - from.Lat)
	dLng := toRad(to.Lng - from.Long)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(from.Lat))*math.Cos(toRad(to.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// NewTrafficAdvisory escalate on the first incident within proximity threshold, scanning stop there.
// Incidents without head location are skipped.
func NewTrafficAdvisory(coordinates Coordinates, incidents []Incident) TrafficAdvisory {
	for _, incident := range incidents {
		if incident.Head == nil {
			continue
		}
		if DistanceMeters(coordinates, *incident.Head) < ProximityThresholdMeters {
			return TrafficAdvisory{Message: TextHeavyTraffic}
		}
	}
	return TrafficAdvisory{Message: TextNormalTraffic}
}
