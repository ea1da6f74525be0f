package api_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cafehub/go-admin-client/api"
	"github.com/cafehub/go-admin-client/roles"
)

func TestUserDecodesProfileArrayForm(t *testing.T) {
	raw := `{
		"id": 7,
		"email": "owner@example.com",
		"role": "COFFEE_SHOP_OWNER",
		"UserProfile": [{"firstName": "Ada", "lastName": "Moreno", "phoneNumber": "+34600111222"}]
	}`

	var user api.User
	require.NoError(t, json.Unmarshal([]byte(raw), &user))
	require.EqualValues(t, 7, user.ID)
	require.Equal(t, roles.RoleShopOwner, user.Role)
	require.Equal(t, "Ada", user.Profile.FirstName)
	require.Equal(t, "Moreno", user.Profile.LastName)
	require.NotNil(t, user.Profile.PhoneNumber)
	require.Equal(t, "+34600111222", *user.Profile.PhoneNumber)
}

func TestUserDecodesProfileObjectForm(t *testing.T) {
	raw := `{"id": 7, "email": "owner@example.com", "UserProfile": {"firstName": "Ada", "lastName": "Moreno"}}`

	var user api.User
	require.NoError(t, json.Unmarshal([]byte(raw), &user))
	require.Equal(t, "Ada", user.Profile.FirstName)
}

func TestUserToleratesEmptyProfileArray(t *testing.T) {
	raw := `{"id": 7, "email": "owner@example.com", "UserProfile": []}`

	var user api.User
	require.NoError(t, json.Unmarshal([]byte(raw), &user))
	require.Empty(t, user.Profile.FirstName)
	require.Nil(t, user.Profile.PhoneNumber)
}

func TestErrorString(t *testing.T) {
	err := &api.Error{Status: 401, Message: "nope"}
	require.Equal(t, "api error 401: nope", err.Error())
}

func TestLocationDecodesBrandIdCasing(t *testing.T) {
	raw := `{"id": 3, "latitude": 40.4168, "longitude": -3.7038, "BrandId": 12}`

	var loc api.Location
	require.NoError(t, json.Unmarshal([]byte(raw), &loc))
	require.EqualValues(t, 12, loc.BrandID)
}
