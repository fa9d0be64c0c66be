package service

import "visitadoras/internal/domain/entity"

// GeoService measures distances between WGS84 points.
type GeoService interface {
	// DistanceMeters returns the geodesic distance between two points.
	DistanceMeters(from, to entity.GeoPoint) float64

	// Nearby keeps the physicians within radiusMeters of origin, nearest first.
	Nearby(origin entity.GeoPoint, physicians []*entity.Physician, radiusMeters float64) []entity.PhysicianDistance
}
