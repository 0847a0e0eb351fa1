package identity

// Role represents a user's role in the storefront
type Role string

const (
	RoleCustomer      Role = "customer"
	RoleDeliveryAgent Role = "delivery_agent"
	RoleOutletAdmin   Role = "outlet_admin"
	RoleSuperAdmin    Role = "super_admin"
)

// ParseRole converts a raw role string into a Role.
// Unknown or empty values fall back to customer; this is the single place
// where role strings are interpreted, so downstream code never re-parses.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleDeliveryAgent:
		return RoleDeliveryAgent
	case RoleOutletAdmin:
		return RoleOutletAdmin
	case RoleSuperAdmin:
		return RoleSuperAdmin
	default:
		return RoleCustomer
	}
}

// IsPrivileged reports whether the role may pass the admin authorization gate
func (r Role) IsPrivileged() bool {
	return r == RoleOutletAdmin || r == RoleSuperAdmin
}

// IsSuperAdmin reports whether the role spans all outlets
func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// String returns the wire representation of the role
func (r Role) String() string {
	return string(r)
}
