package console

import (
	"context"

	"github.com/cafehub/go-admin-client/api"
	"github.com/cafehub/go-admin-client/cache"
)

// Brands covers the cached brand operations.
type Brands struct {
	c *Console
}

func brandListTags(brands []api.Brand) []cache.Tag {
	tags := make([]cache.Tag, 0, len(brands)+1)
	for _, b := range brands {
		tags = append(tags, cache.ItemTag(cache.ResourceBrand, b.ID))
	}
	return append(tags, cache.ListTag(cache.ResourceBrands))
}

// List returns all brands.
func (b *Brands) List(ctx context.Context) ([]api.Brand, error) {
	return read(ctx, b.c.cache, cache.ListKey(cache.ResourceBrands),
		b.c.api.Brands().List, brandListTags)
}

// Get returns one brand by id.
func (b *Brands) Get(ctx context.Context, id int64) (*api.Brand, error) {
	return read(ctx, b.c.cache, cache.ItemKey(cache.ResourceBrand, id),
		func(ctx context.Context) (*api.Brand, error) { return b.c.api.Brands().Get(ctx, id) },
		func(*api.Brand) []cache.Tag {
			return []cache.Tag{cache.ItemTag(cache.ResourceBrand, id)}
		},
	)
}

// Create creates a brand and invalidates the brand list.
func (b *Brands) Create(ctx context.Context, req api.CreateBrandRequest) (*api.Brand, error) {
	return mutate(ctx, b.c.cache, cache.ResourceBrand,
		func(ctx context.Context) (*api.Brand, error) { return b.c.api.Brands().Create(ctx, req) },
		func(*api.Brand) []cache.Tag {
			return []cache.Tag{cache.ListTag(cache.ResourceBrands)}
		},
	)
}

// Update patches a brand and invalidates both the record and the list.
func (b *Brands) Update(ctx context.Context, id int64, req api.UpdateBrandRequest) (*api.Brand, error) {
	return mutate(ctx, b.c.cache, cache.ResourceBrand,
		func(ctx context.Context) (*api.Brand, error) { return b.c.api.Brands().Update(ctx, id, req) },
		func(*api.Brand) []cache.Tag {
			return []cache.Tag{
				cache.ItemTag(cache.ResourceBrand, id),
				cache.ListTag(cache.ResourceBrands),
			}
		},
	)
}

// Delete removes a brand and invalidates the brand list.
func (b *Brands) Delete(ctx context.Context, id int64) error {
	return mutateVoid(ctx, b.c.cache, cache.ResourceBrand,
		func(ctx context.Context) error { return b.c.api.Brands().Delete(ctx, id) },
		cache.ListTag(cache.ResourceBrands),
	)
}
