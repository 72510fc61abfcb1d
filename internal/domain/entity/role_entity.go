package entity

// Roles form a closed set; anything else is rejected at intake.
const (
	RoleAdmin        = "admin"
	RoleSupplier     = "supplier"
	RoleManufacturer = "manufacturer"
	RoleCustomer     = "customer"
)

// DefaultRole is assigned when registration does not declare a role.
const DefaultRole = RoleSupplier

// ValidRole reports whether r is a member of the closed role set.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleSupplier, RoleManufacturer, RoleCustomer:
		return true
	}
	return false
}
