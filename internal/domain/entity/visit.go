package entity

import (
	"time"

	"github.com/google/uuid"
)

// Default snapshot values for physicians with incomplete data.
const (
	VisitAddressUnknown       = "Sin dirección"
	VisitEstablishmentUnknown = "Sin especificar"
)

// Visit is an immutable record of a visitadora calling on a physician.
// Name, address and establishment are snapshots taken at capture time.
type Visit struct {
	ID                uuid.UUID `json:"id"`
	VisitadoraID      uuid.UUID `json:"visitadora_id"`
	PhysicianID       uuid.UUID `json:"medico_id"`
	ClientName        string    `json:"nombre_cliente"`
	Address           string    `json:"direccion"`
	EstablishmentType string    `json:"tipo_establecimiento"`
	Municipality      string    `json:"municipio"`
	Notes             string    `json:"observaciones"`
	Location          *GeoPoint `json:"ubicacion,omitempty"`
	DistanceMeters    *float64  `json:"distancia_metros,omitempty"` // Distance to the physician's registered point.
	SignatureURL      string    `json:"firma_url"`
	CreatedAt         time.Time `json:"created_at"`
}

// HasSignature reports whether a signature image was stored for the visit.
func (v *Visit) HasSignature() bool {
	return v.SignatureURL != ""
}

// SnapshotFrom copies the physician fields a visit keeps even if the physician changes later.
func (v *Visit) SnapshotFrom(p *Physician) {
	v.PhysicianID = p.ID
	v.ClientName = p.Name
	v.Municipality = p.Municipality

	v.Address = p.Address
	if v.Address == "" {
		v.Address = VisitAddressUnknown
	}

	v.EstablishmentType = p.Clinic
	if v.EstablishmentType == "" {
		v.EstablishmentType = VisitEstablishmentUnknown
	}
}

// VisitScope selects which slice of the visit history is listed.
type VisitScope string

const (
	VisitScopeToday   VisitScope = "today"
	VisitScopeHistory VisitScope = "history"
)

// VisitFilter narrows visit listings. Zero values mean "no filter".
type VisitFilter struct {
	VisitadoraID  *uuid.UUID
	From          *time.Time // inclusive
	To            *time.Time // exclusive
	PhysicianName string     // case-insensitive substring
	Municipality  string     // case-insensitive substring
}
