package entity

import "math"

// GeoPoint is a WGS84 coordinate captured by a device or registered for a physician.
type GeoPoint struct {
	Latitude  float64 `json:"latitud"`
	Longitude float64 `json:"longitud"`
}

// IsValid reports whether the point lies within WGS84 bounds.
func (p GeoPoint) IsValid() bool {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) {
		return false
	}

	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

// NewGeoPoint builds a point from an optional lat/lng pair.
// It returns nil when both are absent and false when only one is present.
func NewGeoPoint(lat, lng *float64) (*GeoPoint, bool) {
	if lat == nil && lng == nil {
		return nil, true
	}
	if lat == nil || lng == nil {
		return nil, false
	}

	point := GeoPoint{Latitude: *lat, Longitude: *lng}
	if !point.IsValid() {
		return nil, false
	}

	return &point, true
}
