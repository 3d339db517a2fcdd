package utils

import (
	"math"

	"github.com/wekesa/mizigo/internal/pkg/models"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula
const earthRadiusKm = 6371.0

// CalculateDistance calculates the distance between two points in kilometers
// using the Haversine formula
func CalculateDistance(point1, point2 models.GeoPoint) float64 {
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Bearing returns the initial bearing in degrees from point1 to point2
func Bearing(point1, point2 models.GeoPoint) float64 {
	lat1 := point1.Latitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	dLon := (point2.Longitude - point1.Longitude) * math.Pi / 180.0

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	bearing := math.Atan2(y, x) * 180.0 / math.Pi

	return math.Mod(bearing+360.0, 360.0)
}

// PointToSegmentKm returns the shortest distance in kilometers from p to the
// segment a-b. Uses an equirectangular projection around the segment, which
// is accurate enough at the scales a single route leg covers.
func PointToSegmentKm(p, a, b models.GeoPoint) float64 {
	// Project to a local flat plane (km), latitude-corrected
	cosLat := math.Cos(a.Latitude * math.Pi / 180.0)
	ax, ay := 0.0, 0.0
	bx := (b.Longitude - a.Longitude) * cosLat * 111.32
	by := (b.Latitude - a.Latitude) * 111.32
	px := (p.Longitude - a.Longitude) * cosLat * 111.32
	py := (p.Latitude - a.Latitude) * 111.32

	dx, dy := bx-ax, by-ay
	segLenSq := dx*dx + dy*dy
	if segLenSq == 0 {
		return CalculateDistance(p, a)
	}

	// Clamp the projection onto the segment
	t := ((px-ax)*dx + (py-ay)*dy) / segLenSq
	t = math.Max(0, math.Min(1, t))

	cx, cy := ax+t*dx, ay+t*dy
	return math.Hypot(px-cx, py-cy)
}

// DistanceToRouteKm returns the minimum distance in kilometers from p to the
// route polyline.
func DistanceToRouteKm(p models.GeoPoint, route models.Route) float64 {
	if len(route.Points) == 0 {
		return 0
	}
	if len(route.Points) == 1 {
		return CalculateDistance(p, route.Points[0])
	}

	min := math.MaxFloat64
	for i := 0; i < len(route.Points)-1; i++ {
		d := PointToSegmentKm(p, route.Points[i], route.Points[i+1])
		if d < min {
			min = d
		}
	}
	return min
}

// EndpointProximityKm returns the smaller of the distances from p to the
// route's start and end anchors. This is the historical deviation check; it
// deliberately ignores the intermediate polyline.
func EndpointProximityKm(p models.GeoPoint, route models.Route) float64 {
	if len(route.Points) == 0 {
		return 0
	}
	dStart := CalculateDistance(p, route.Start())
	dEnd := CalculateDistance(p, route.End())
	return math.Min(dStart, dEnd)
}

// PolylineLengthKm returns the total length of a point sequence in kilometers
func PolylineLengthKm(points []models.GeoPoint) float64 {
	total := 0.0
	for i := 0; i < len(points)-1; i++ {
		total += CalculateDistance(points[i], points[i+1])
	}
	return total
}

// InsertionCostKm returns the added length of inserting p between a and b
func InsertionCostKm(p, a, b models.GeoPoint) float64 {
	return CalculateDistance(a, p) + CalculateDistance(p, b) - CalculateDistance(a, b)
}
