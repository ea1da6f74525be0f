package api

import (
	"context"
	"net/url"

	"github.com/cafehub/go-admin-client/roles"
)

// UsersAPI covers the user management endpoints.
type UsersAPI struct {
	c *Client
}

// List returns all users, optionally filtered by role.
func (u *UsersAPI) List(ctx context.Context, roleFilter roles.RoleType) ([]User, error) {
	path := "/users"
	if roleFilter != "" {
		q := url.Values{}
		q.Set("role", string(roleFilter))
		path += "?" + q.Encode()
	}
	var out []User
	if err := u.c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns a user with their brand and location assignments.
func (u *UsersAPI) Get(ctx context.Context, id int64) (*UserWithRelations, error) {
	var out UserWithRelations
	if err := u.c.get(ctx, idPath("/users", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile patches a user's profile fields.
func (u *UsersAPI) UpdateProfile(ctx context.Context, id int64, req UpdateUserProfileRequest) (*User, error) {
	var out User
	if err := u.c.patch(ctx, idPath("/users", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a user. Admin only.
func (u *UsersAPI) Delete(ctx context.Context, id int64) error {
	return u.c.delete(ctx, idPath("/users", id))
}

// AssignToBrand links a user to a brand. Admin only.
func (u *UsersAPI) AssignToBrand(ctx context.Context, req AssignUserToBrandRequest) error {
	return u.c.post(ctx, "/users/assign-to-brand", req, nil)
}

// AssignToLocation links a user to a location, optionally as its manager.
func (u *UsersAPI) AssignToLocation(ctx context.Context, req AssignUserToLocationRequest) error {
	return u.c.post(ctx, "/users/assign-to-location", req, nil)
}
