// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a principal can have in the storefront.
type Role string

const (
	// RoleCustomer indicates a regular shopper.
	RoleCustomer Role = "customer"
	// RoleDealer indicates a dealer who owns listings.
	RoleDealer Role = "dealer"
	// RoleSuperadmin indicates the site operator.
	RoleSuperadmin Role = "superadmin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
