package entity

import (
	"time"

	"github.com/google/uuid"
)

// Physician is an entry of the physician directory (medicos).
type Physician struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"nombre"`
	Clinic       string     `json:"clinica"`
	Specialty    string     `json:"especialidad"`
	Municipality string     `json:"municipio"`
	Address      string     `json:"direccion"`
	Phone        string     `json:"telefono"`
	Notes        string     `json:"referencia"`
	Location     *GeoPoint  `json:"ubicacion,omitempty"` // Optional registered coordinates.
	Active       bool       `json:"activo"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PhysicianDistance pairs a physician with its distance from a reference point.
type PhysicianDistance struct {
	Physician      *Physician `json:"medico"`
	DistanceMeters float64    `json:"distancia_metros"`
}
