// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a profile can have in the system.
type Role string

const (
	// RoleAdmin manages visitadoras, physicians and commissions.
	RoleAdmin Role = "admin"
	// RoleVisitadora is a field sales representative.
	RoleVisitadora Role = "visitadora"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleVisitadora:
		return true
	default:
		return false
	}
}
