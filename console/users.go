package console

import (
	"context"

	"github.com/cafehub/go-admin-client/api"
	"github.com/cafehub/go-admin-client/cache"
	"github.com/cafehub/go-admin-client/roles"
)

// Users covers the cached user management operations.
type Users struct {
	c *Console
}

// List returns all users, optionally filtered by role. Filtered lists share
// the user list tag so any user mutation refetches them.
func (u *Users) List(ctx context.Context, roleFilter roles.RoleType) ([]api.User, error) {
	key := cache.ListKey(cache.ResourceUsers)
	if roleFilter != "" {
		key = cache.Key{Resource: cache.ResourceUsers, ID: cache.ListID + ":role:" + string(roleFilter)}
	}
	return read(ctx, u.c.cache, key,
		func(ctx context.Context) ([]api.User, error) { return u.c.api.Users().List(ctx, roleFilter) },
		func(users []api.User) []cache.Tag {
			tags := make([]cache.Tag, 0, len(users)+1)
			for _, usr := range users {
				tags = append(tags, cache.ItemTag(cache.ResourceUser, usr.ID))
			}
			return append(tags, cache.ListTag(cache.ResourceUsers))
		},
	)
}

// Get returns one user with brand and location assignments.
func (u *Users) Get(ctx context.Context, id int64) (*api.UserWithRelations, error) {
	return read(ctx, u.c.cache, cache.ItemKey(cache.ResourceUser, id),
		func(ctx context.Context) (*api.UserWithRelations, error) { return u.c.api.Users().Get(ctx, id) },
		func(*api.UserWithRelations) []cache.Tag {
			return []cache.Tag{cache.ItemTag(cache.ResourceUser, id)}
		},
	)
}

// UpdateProfile patches a user's profile and invalidates the record and list.
func (u *Users) UpdateProfile(ctx context.Context, id int64, req api.UpdateUserProfileRequest) (*api.User, error) {
	return mutate(ctx, u.c.cache, cache.ResourceUser,
		func(ctx context.Context) (*api.User, error) { return u.c.api.Users().UpdateProfile(ctx, id, req) },
		func(*api.User) []cache.Tag {
			return []cache.Tag{
				cache.ItemTag(cache.ResourceUser, id),
				cache.ListTag(cache.ResourceUsers),
			}
		},
	)
}

// Delete removes a user and invalidates the user list.
func (u *Users) Delete(ctx context.Context, id int64) error {
	return mutateVoid(ctx, u.c.cache, cache.ResourceUser,
		func(ctx context.Context) error { return u.c.api.Users().Delete(ctx, id) },
		cache.ListTag(cache.ResourceUsers),
	)
}

// AssignToBrand links a user to a brand and invalidates the user's record
// and the user list.
func (u *Users) AssignToBrand(ctx context.Context, req api.AssignUserToBrandRequest) error {
	return mutateVoid(ctx, u.c.cache, cache.ResourceUser,
		func(ctx context.Context) error { return u.c.api.Users().AssignToBrand(ctx, req) },
		cache.ItemTag(cache.ResourceUser, req.UserID),
		cache.ListTag(cache.ResourceUsers),
	)
}

// AssignToLocation links a user to a location and invalidates the user's
// record and the user list.
func (u *Users) AssignToLocation(ctx context.Context, req api.AssignUserToLocationRequest) error {
	return mutateVoid(ctx, u.c.cache, cache.ResourceUser,
		func(ctx context.Context) error { return u.c.api.Users().AssignToLocation(ctx, req) },
		cache.ItemTag(cache.ResourceUser, req.UserID),
		cache.ListTag(cache.ResourceUsers),
	)
}
