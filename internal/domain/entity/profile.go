// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the account of a person using the system, either an admin or a visitadora.
// Profiles are never hard-deleted; deactivation only clears Active.
type Profile struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the profile.
	Email     string    `json:"email"`      // Login identifier.
	Name      string    `json:"nombre"`     // Display name.
	Role      Role      `json:"role"`       // admin or visitadora.
	Active    bool      `json:"activo"`     // Inactive profiles cannot sign in.
	Zone      string    `json:"zona"`       // Sales zone covered by the visitadora.
	Phone     string    `json:"telefono"`   // Contact phone.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this profile was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// IsAdmin reports whether the profile holds the admin role.
func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// VisitCounters aggregates how many visits a visitadora has logged.
type VisitCounters struct {
	Total int64 `json:"total_visitas"`
	Today int64 `json:"visitas_hoy"`
}

// VisitadoraStats is one line of the admin dashboard.
type VisitadoraStats struct {
	Profile  *Profile      `json:"visitadora"`
	Counters VisitCounters `json:"contadores"`
}
