package console

import (
	"context"

	"github.com/cafehub/go-admin-client/api"
	"github.com/cafehub/go-admin-client/cache"
)

// Locations covers the cached location operations and the staff sub-resource.
type Locations struct {
	c *Console
}

func locationListTags(locations []api.Location) []cache.Tag {
	tags := make([]cache.Tag, 0, len(locations)+1)
	for _, l := range locations {
		tags = append(tags, cache.ItemTag(cache.ResourceLocation, l.ID))
	}
	return append(tags, cache.ListTag(cache.ResourceLocations))
}

// List returns all locations.
func (l *Locations) List(ctx context.Context) ([]api.Location, error) {
	return read(ctx, l.c.cache, cache.ListKey(cache.ResourceLocations),
		l.c.api.Locations().List, locationListTags)
}

// ListByBrand returns the locations of one brand. The result still carries
// the list tag, so any location mutation refetches it.
func (l *Locations) ListByBrand(ctx context.Context, brandID int64) ([]api.Location, error) {
	return read(ctx, l.c.cache, cache.ScopedListKey(cache.ResourceLocations, "brand", brandID),
		func(ctx context.Context) ([]api.Location, error) {
			return l.c.api.Locations().ListByBrand(ctx, brandID)
		},
		locationListTags)
}

// Get returns one location by id, tagged with its visible staff assignments.
func (l *Locations) Get(ctx context.Context, id int64) (*api.Location, error) {
	return read(ctx, l.c.cache, cache.ItemKey(cache.ResourceLocation, id),
		func(ctx context.Context) (*api.Location, error) { return l.c.api.Locations().Get(ctx, id) },
		func(loc *api.Location) []cache.Tag {
			tags := []cache.Tag{cache.ItemTag(cache.ResourceLocation, id)}
			for _, staff := range loc.Staff {
				tags = append(tags, cache.ItemTag(cache.ResourceLocationStaff, staff.ID))
			}
			return tags
		},
	)
}

// Create creates a location and invalidates the location list.
func (l *Locations) Create(ctx context.Context, req api.CreateLocationRequest) (*api.Location, error) {
	return mutate(ctx, l.c.cache, cache.ResourceLocation,
		func(ctx context.Context) (*api.Location, error) { return l.c.api.Locations().Create(ctx, req) },
		func(*api.Location) []cache.Tag {
			return []cache.Tag{cache.ListTag(cache.ResourceLocations)}
		},
	)
}

// Update patches a location and invalidates both the record and the list.
func (l *Locations) Update(ctx context.Context, id int64, req api.UpdateLocationRequest) (*api.Location, error) {
	return mutate(ctx, l.c.cache, cache.ResourceLocation,
		func(ctx context.Context) (*api.Location, error) { return l.c.api.Locations().Update(ctx, id, req) },
		func(*api.Location) []cache.Tag {
			return []cache.Tag{
				cache.ItemTag(cache.ResourceLocation, id),
				cache.ListTag(cache.ResourceLocations),
			}
		},
	)
}

// Delete removes a location and invalidates the location list.
func (l *Locations) Delete(ctx context.Context, id int64) error {
	return mutateVoid(ctx, l.c.cache, cache.ResourceLocation,
		func(ctx context.Context) error { return l.c.api.Locations().Delete(ctx, id) },
		cache.ListTag(cache.ResourceLocations),
	)
}

// Staff returns the employees assigned to a location.
func (l *Locations) Staff(ctx context.Context, locationID int64) ([]api.LocationStaff, error) {
	return read(ctx, l.c.cache, cache.ScopedListKey(cache.ResourceLocationStaff, "location", locationID),
		func(ctx context.Context) ([]api.LocationStaff, error) {
			return l.c.api.Locations().Staff(ctx, locationID)
		},
		func(staff []api.LocationStaff) []cache.Tag {
			tags := make([]cache.Tag, 0, len(staff)+1)
			for _, s := range staff {
				tags = append(tags, cache.ItemTag(cache.ResourceLocationStaff, s.ID))
			}
			return append(tags, cache.ListTag(cache.ResourceLocationStaff))
		},
	)
}

// AssignStaff assigns an employee to a location and invalidates the staff
// list plus the location record that embeds it.
func (l *Locations) AssignStaff(ctx context.Context, locationID, staffID int64) (*api.LocationStaff, error) {
	return mutate(ctx, l.c.cache, cache.ResourceLocationStaff,
		func(ctx context.Context) (*api.LocationStaff, error) {
			return l.c.api.Locations().AssignStaff(ctx, locationID, staffID)
		},
		func(*api.LocationStaff) []cache.Tag {
			return []cache.Tag{
				cache.ListTag(cache.ResourceLocationStaff),
				cache.ItemTag(cache.ResourceLocation, locationID),
			}
		},
	)
}

// RemoveStaff removes an employee assignment and invalidates the staff list.
func (l *Locations) RemoveStaff(ctx context.Context, locationID, staffID int64) error {
	return mutateVoid(ctx, l.c.cache, cache.ResourceLocationStaff,
		func(ctx context.Context) error { return l.c.api.Locations().RemoveStaff(ctx, locationID, staffID) },
		cache.ListTag(cache.ResourceLocationStaff),
	)
}
