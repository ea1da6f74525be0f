package roles_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cafehub/go-admin-client/roles"
)

func TestValid(t *testing.T) {
	require.True(t, roles.RoleSuperAdmin.Valid())
	require.True(t, roles.RoleShopOwner.Valid())
	require.True(t, roles.RoleShopManager.Valid())
	require.True(t, roles.RoleShopStaff.Valid())
	require.False(t, roles.RoleType("").Valid())
	require.False(t, roles.RoleType("INTERN").Valid())
}

func TestAllowedWithEmptyRequirementAcceptsAnyValidRole(t *testing.T) {
	require.True(t, roles.Allowed(roles.RoleShopStaff))
	require.True(t, roles.Allowed(roles.RoleShopOwner))
	require.False(t, roles.Allowed(roles.RoleType("")))
}

func TestAllowedMatchesRequiredRoles(t *testing.T) {
	require.True(t, roles.Allowed(roles.RoleShopManager, roles.RoleShopOwner, roles.RoleShopManager))
	require.False(t, roles.Allowed(roles.RoleShopStaff, roles.RoleShopOwner, roles.RoleShopManager))
}

func TestSuperAdminPassesEveryCheck(t *testing.T) {
	require.True(t, roles.Allowed(roles.RoleSuperAdmin, roles.RoleShopOwner))
	require.True(t, roles.Allowed(roles.RoleSuperAdmin, roles.RoleShopStaff))
	require.True(t, roles.Allowed(roles.RoleSuperAdmin))
}

func TestUnknownRoleNeverAllowed(t *testing.T) {
	require.False(t, roles.Allowed(roles.RoleType("INTERN"), roles.RoleShopStaff))
	require.False(t, roles.Allowed(roles.RoleType("INTERN")))
}
