// Package geo measures straight-line distances between visit and physician coordinates.
package geo

import (
	"sort"

	"visitadoras/internal/domain/entity"
	"visitadoras/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type geoService struct{}

// NewGeoService creates the haversine-based GeoService.
func NewGeoService() service.GeoService {
	return &geoService{}
}

func toPoint(p entity.GeoPoint) orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// DistanceMeters returns the haversine distance between two points.
func (s *geoService) DistanceMeters(from, to entity.GeoPoint) float64 {
	return geo.DistanceHaversine(toPoint(from), toPoint(to))
}

// Nearby keeps the physicians within radiusMeters of origin, nearest first.
// Physicians without coordinates are skipped.
func (s *geoService) Nearby(origin entity.GeoPoint, physicians []*entity.Physician, radiusMeters float64) []entity.PhysicianDistance {
	originPoint := toPoint(origin)
	bound := geo.NewBoundAroundPoint(originPoint, radiusMeters)

	results := make([]entity.PhysicianDistance, 0)
	for _, physician := range physicians {
		if physician == nil || physician.Location == nil {
			continue
		}

		point := toPoint(*physician.Location)
		if !bound.Contains(point) {
			continue
		}

		distance := geo.DistanceHaversine(originPoint, point)
		if distance > radiusMeters {
			continue
		}

		results = append(results, entity.PhysicianDistance{Physician: physician, DistanceMeters: distance})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceMeters < results[j].DistanceMeters
	})

	return results
}
