package geo

import (
	"testing"

	"visitadoras/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference points in Guatemala City.
var (
	plazaCentral = entity.GeoPoint{Latitude: 14.6425, Longitude: -90.5133}
	zona10       = entity.GeoPoint{Latitude: 14.6010, Longitude: -90.5080}
	antigua      = entity.GeoPoint{Latitude: 14.5586, Longitude: -90.7295}
)

func TestGeoService_DistanceMeters(t *testing.T) {
	svc := NewGeoService()

	assert.InDelta(t, 0, svc.DistanceMeters(plazaCentral, plazaCentral), 1e-6)

	// Roughly 4.6 km between the historic center and zona 10.
	d := svc.DistanceMeters(plazaCentral, zona10)
	assert.InDelta(t, 4650, d, 150)
	assert.InDelta(t, d, svc.DistanceMeters(zona10, plazaCentral), 1e-6)
}

func TestGeoService_Nearby(t *testing.T) {
	svc := NewGeoService()

	near := &entity.Physician{Name: "Dra. López", Location: &zona10}
	far := &entity.Physician{Name: "Dr. Castillo", Location: &antigua}
	here := &entity.Physician{Name: "Dr. Ramírez", Location: &plazaCentral}
	noLocation := &entity.Physician{Name: "Dr. Sin Ubicación"}

	results := svc.Nearby(plazaCentral, []*entity.Physician{near, far, noLocation, here}, 10000)

	require.Len(t, results, 2)
	assert.Equal(t, "Dr. Ramírez", results[0].Physician.Name)
	assert.Equal(t, "Dra. López", results[1].Physician.Name)
	assert.Less(t, results[0].DistanceMeters, results[1].DistanceMeters)
}

func TestGeoService_Nearby_Empty(t *testing.T) {
	svc := NewGeoService()

	results := svc.Nearby(plazaCentral, nil, 500)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
