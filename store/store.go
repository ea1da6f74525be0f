package store

import (
	"github.com/cafehub/go-admin-client/api"
	"github.com/cafehub/go-admin-client/cache"
)

// Store bundles one slice per resource type, all fed from the same cache
// event stream.
type Store struct {
	Brands        *Slice[api.Brand]
	Locations     *Slice[api.Location]
	LocationStaff *Slice[api.LocationStaff]
	Menus         *Slice[api.Menu]
	MenuTemplates *Slice[api.MenuTemplate]
	TemplateItems *Slice[api.TemplateItem]
	ItemOverrides *Slice[api.MenuItemOverride]
	Users         *Slice[api.User]
}

// New creates the resource slices and subscribes them to cs.
func New(cs *cache.Store) *Store {
	s := &Store{
		Brands: NewSlice(cache.ResourceBrand, cache.ResourceBrands,
			func(b api.Brand) int64 { return b.ID }),
		Locations: NewSlice(cache.ResourceLocation, cache.ResourceLocations,
			func(l api.Location) int64 { return l.ID }),
		LocationStaff: NewSlice(cache.ResourceLocationStaff, cache.ResourceLocationStaff,
			func(ls api.LocationStaff) int64 { return ls.ID }),
		Menus: NewSlice(cache.ResourceMenu, cache.ResourceMenus,
			func(m api.Menu) int64 { return m.ID }),
		MenuTemplates: NewSlice(cache.ResourceMenuTemplate, cache.ResourceMenuTemplates,
			func(t api.MenuTemplate) int64 { return t.ID }),
		TemplateItems: NewSlice(cache.ResourceTemplateItem, cache.ResourceTemplateItems,
			func(i api.TemplateItem) int64 { return i.ID }),
		ItemOverrides: NewSlice(cache.ResourceItemOverride, cache.ResourceItemOverrides,
			func(o api.MenuItemOverride) int64 { return o.ID }),
		Users: NewSlice(cache.ResourceUser, cache.ResourceUsers,
			func(u api.User) int64 { return u.ID }),
	}

	cs.Subscribe(s.Brands.Apply)
	cs.Subscribe(s.Locations.Apply)
	cs.Subscribe(s.LocationStaff.Apply)
	cs.Subscribe(s.Menus.Apply)
	cs.Subscribe(s.MenuTemplates.Apply)
	cs.Subscribe(s.TemplateItems.Apply)
	cs.Subscribe(s.ItemOverrides.Apply)
	cs.Subscribe(s.Users.Apply)
	return s
}
