package roles

// RoleType represents a staff member's role within the platform.
// Roles are assigned by the backend and scope what a user can manage:
// super admins administer every brand, owners their own brand, managers a
// single location, staff only themselves.
type RoleType string

const (
	RoleSuperAdmin  RoleType = "SUPER_ADMIN"
	RoleShopOwner   RoleType = "COFFEE_SHOP_OWNER"
	RoleShopManager RoleType = "COFFEE_SHOP_MANAGER"
	RoleShopStaff   RoleType = "COFFEE_SHOP_STAFF"
)

// Valid reports whether r is one of the known platform roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleShopOwner, RoleShopManager, RoleShopStaff:
		return true
	}
	return false
}

// Allowed is the single capability check applied at the routing layer.
// It reports whether current satisfies the required role set. An empty
// required set means any authenticated role is acceptable. Super admins
// pass every check.
func Allowed(current RoleType, required ...RoleType) bool {
	if !current.Valid() {
		return false
	}
	if len(required) == 0 {
		return true
	}
	if current == RoleSuperAdmin {
		return true
	}
	for _, r := range required {
		if current == r {
			return true
		}
	}
	return false
}
