package console

import (
	"context"

	"github.com/cafehub/go-admin-client/api"
	"github.com/cafehub/go-admin-client/cache"
)

// Menu covers the cached menu, template, item and override operations.
type Menu struct {
	c *Console
}

func templateListTags(templates []api.MenuTemplate) []cache.Tag {
	tags := make([]cache.Tag, 0, len(templates)+1)
	for _, t := range templates {
		tags = append(tags, cache.ItemTag(cache.ResourceMenuTemplate, t.ID))
	}
	return append(tags, cache.ListTag(cache.ResourceMenuTemplates))
}

// Templates returns all menu templates.
func (m *Menu) Templates(ctx context.Context) ([]api.MenuTemplate, error) {
	return read(ctx, m.c.cache, cache.ListKey(cache.ResourceMenuTemplates),
		m.c.api.Menu().Templates, templateListTags)
}

// TemplatesByBrand returns the templates of one brand.
func (m *Menu) TemplatesByBrand(ctx context.Context, brandID int64) ([]api.MenuTemplate, error) {
	return read(ctx, m.c.cache, cache.ScopedListKey(cache.ResourceMenuTemplates, "brand", brandID),
		func(ctx context.Context) ([]api.MenuTemplate, error) {
			return m.c.api.Menu().TemplatesByBrand(ctx, brandID)
		},
		templateListTags)
}

// Template returns one template by id.
func (m *Menu) Template(ctx context.Context, id int64) (*api.MenuTemplate, error) {
	return read(ctx, m.c.cache, cache.ItemKey(cache.ResourceMenuTemplate, id),
		func(ctx context.Context) (*api.MenuTemplate, error) { return m.c.api.Menu().Template(ctx, id) },
		func(*api.MenuTemplate) []cache.Tag {
			return []cache.Tag{cache.ItemTag(cache.ResourceMenuTemplate, id)}
		},
	)
}

// CreateTemplate creates a template and invalidates the template list.
func (m *Menu) CreateTemplate(ctx context.Context, req api.CreateMenuTemplateRequest) (*api.MenuTemplate, error) {
	return mutate(ctx, m.c.cache, cache.ResourceMenuTemplate,
		func(ctx context.Context) (*api.MenuTemplate, error) { return m.c.api.Menu().CreateTemplate(ctx, req) },
		func(*api.MenuTemplate) []cache.Tag {
			return []cache.Tag{cache.ListTag(cache.ResourceMenuTemplates)}
		},
	)
}

// UpdateTemplate patches a template and invalidates the record and the list.
func (m *Menu) UpdateTemplate(ctx context.Context, id int64, req api.UpdateMenuTemplateRequest) (*api.MenuTemplate, error) {
	return mutate(ctx, m.c.cache, cache.ResourceMenuTemplate,
		func(ctx context.Context) (*api.MenuTemplate, error) { return m.c.api.Menu().UpdateTemplate(ctx, id, req) },
		func(*api.MenuTemplate) []cache.Tag {
			return []cache.Tag{
				cache.ItemTag(cache.ResourceMenuTemplate, id),
				cache.ListTag(cache.ResourceMenuTemplates),
			}
		},
	)
}

// DeleteTemplate removes a template and invalidates the template list.
func (m *Menu) DeleteTemplate(ctx context.Context, id int64) error {
	return mutateVoid(ctx, m.c.cache, cache.ResourceMenuTemplate,
		func(ctx context.Context) error { return m.c.api.Menu().DeleteTemplate(ctx, id) },
		cache.ListTag(cache.ResourceMenuTemplates),
	)
}

func templateItemListTags(items []api.TemplateItem) []cache.Tag {
	tags := make([]cache.Tag, 0, len(items)+1)
	for _, i := range items {
		tags = append(tags, cache.ItemTag(cache.ResourceTemplateItem, i.ID))
	}
	return append(tags, cache.ListTag(cache.ResourceTemplateItems))
}

// TemplateItems returns all template items.
func (m *Menu) TemplateItems(ctx context.Context) ([]api.TemplateItem, error) {
	return read(ctx, m.c.cache, cache.ListKey(cache.ResourceTemplateItems),
		m.c.api.Menu().TemplateItems, templateItemListTags)
}

// TemplateItemsByTemplate returns the items on one template.
func (m *Menu) TemplateItemsByTemplate(ctx context.Context, templateID int64) ([]api.TemplateItem, error) {
	return read(ctx, m.c.cache, cache.ScopedListKey(cache.ResourceTemplateItems, "template", templateID),
		func(ctx context.Context) ([]api.TemplateItem, error) {
			return m.c.api.Menu().TemplateItemsByTemplate(ctx, templateID)
		},
		templateItemListTags)
}

// TemplateItem returns one template item by id.
func (m *Menu) TemplateItem(ctx context.Context, id int64) (*api.TemplateItem, error) {
	return read(ctx, m.c.cache, cache.ItemKey(cache.ResourceTemplateItem, id),
		func(ctx context.Context) (*api.TemplateItem, error) { return m.c.api.Menu().TemplateItem(ctx, id) },
		func(*api.TemplateItem) []cache.Tag {
			return []cache.Tag{cache.ItemTag(cache.ResourceTemplateItem, id)}
		},
	)
}

// CreateTemplateItem adds an item and invalidates the item list.
func (m *Menu) CreateTemplateItem(ctx context.Context, req api.CreateTemplateItemRequest) (*api.TemplateItem, error) {
	return mutate(ctx, m.c.cache, cache.ResourceTemplateItem,
		func(ctx context.Context) (*api.TemplateItem, error) { return m.c.api.Menu().CreateTemplateItem(ctx, req) },
		func(*api.TemplateItem) []cache.Tag {
			return []cache.Tag{cache.ListTag(cache.ResourceTemplateItems)}
		},
	)
}

// UpdateTemplateItem patches an item and invalidates the record and list.
func (m *Menu) UpdateTemplateItem(ctx context.Context, id int64, req api.UpdateTemplateItemRequest) (*api.TemplateItem, error) {
	return mutate(ctx, m.c.cache, cache.ResourceTemplateItem,
		func(ctx context.Context) (*api.TemplateItem, error) { return m.c.api.Menu().UpdateTemplateItem(ctx, id, req) },
		func(*api.TemplateItem) []cache.Tag {
			return []cache.Tag{
				cache.ItemTag(cache.ResourceTemplateItem, id),
				cache.ListTag(cache.ResourceTemplateItems),
			}
		},
	)
}

// DeleteTemplateItem removes an item and invalidates the item list.
func (m *Menu) DeleteTemplateItem(ctx context.Context, id int64) error {
	return mutateVoid(ctx, m.c.cache, cache.ResourceTemplateItem,
		func(ctx context.Context) error { return m.c.api.Menu().DeleteTemplateItem(ctx, id) },
		cache.ListTag(cache.ResourceTemplateItems),
	)
}

func menuListTags(menus []api.Menu) []cache.Tag {
	tags := make([]cache.Tag, 0, len(menus)+1)
	for _, mn := range menus {
		tags = append(tags, cache.ItemTag(cache.ResourceMenu, mn.ID))
	}
	return append(tags, cache.ListTag(cache.ResourceMenus))
}

// Menus returns all menus.
func (m *Menu) Menus(ctx context.Context) ([]api.Menu, error) {
	return read(ctx, m.c.cache, cache.ListKey(cache.ResourceMenus),
		m.c.api.Menu().Menus, menuListTags)
}

// ByLocation returns the menu assigned to a location.
func (m *Menu) ByLocation(ctx context.Context, locationID int64) (*api.Menu, error) {
	return read(ctx, m.c.cache, cache.ScopedListKey(cache.ResourceMenu, "location", locationID),
		func(ctx context.Context) (*api.Menu, error) { return m.c.api.Menu().MenuByLocation(ctx, locationID) },
		func(menu *api.Menu) []cache.Tag {
			return []cache.Tag{
				cache.ItemTag(cache.ResourceMenu, menu.ID),
				cache.ListTag(cache.ResourceMenus),
			}
		},
	)
}

// Get returns one menu by id.
func (m *Menu) Get(ctx context.Context, id int64) (*api.Menu, error) {
	return read(ctx, m.c.cache, cache.ItemKey(cache.ResourceMenu, id),
		func(ctx context.Context) (*api.Menu, error) { return m.c.api.Menu().Menu(ctx, id) },
		func(*api.Menu) []cache.Tag {
			return []cache.Tag{cache.ItemTag(cache.ResourceMenu, id)}
		},
	)
}

// Create assigns a template to a location and invalidates the menu list.
func (m *Menu) Create(ctx context.Context, req api.CreateMenuRequest) (*api.Menu, error) {
	return mutate(ctx, m.c.cache, cache.ResourceMenu,
		func(ctx context.Context) (*api.Menu, error) { return m.c.api.Menu().CreateMenu(ctx, req) },
		func(*api.Menu) []cache.Tag {
			return []cache.Tag{cache.ListTag(cache.ResourceMenus)}
		},
	)
}

// Update switches a menu's template and invalidates the record and list.
func (m *Menu) Update(ctx context.Context, id int64, req api.UpdateMenuRequest) (*api.Menu, error) {
	return mutate(ctx, m.c.cache, cache.ResourceMenu,
		func(ctx context.Context) (*api.Menu, error) { return m.c.api.Menu().UpdateMenu(ctx, id, req) },
		func(*api.Menu) []cache.Tag {
			return []cache.Tag{
				cache.ItemTag(cache.ResourceMenu, id),
				cache.ListTag(cache.ResourceMenus),
			}
		},
	)
}

// Delete removes a menu and invalidates the menu list.
func (m *Menu) Delete(ctx context.Context, id int64) error {
	return mutateVoid(ctx, m.c.cache, cache.ResourceMenu,
		func(ctx context.Context) error { return m.c.api.Menu().DeleteMenu(ctx, id) },
		cache.ListTag(cache.ResourceMenus),
	)
}

func overrideListTags(overrides []api.MenuItemOverride) []cache.Tag {
	tags := make([]cache.Tag, 0, len(overrides)+1)
	for _, o := range overrides {
		tags = append(tags, cache.ItemTag(cache.ResourceItemOverride, o.ID))
	}
	return append(tags, cache.ListTag(cache.ResourceItemOverrides))
}

// OverridesByMenu returns the item overrides on a menu.
func (m *Menu) OverridesByMenu(ctx context.Context, menuID int64) ([]api.MenuItemOverride, error) {
	return read(ctx, m.c.cache, cache.ScopedListKey(cache.ResourceItemOverrides, "menu", menuID),
		func(ctx context.Context) ([]api.MenuItemOverride, error) {
			return m.c.api.Menu().OverridesByMenu(ctx, menuID)
		},
		overrideListTags)
}

// CreateOverride overrides a template item and invalidates the override list.
func (m *Menu) CreateOverride(ctx context.Context, req api.CreateMenuItemOverrideRequest) (*api.MenuItemOverride, error) {
	return mutate(ctx, m.c.cache, cache.ResourceItemOverride,
		func(ctx context.Context) (*api.MenuItemOverride, error) { return m.c.api.Menu().CreateOverride(ctx, req) },
		func(*api.MenuItemOverride) []cache.Tag {
			return []cache.Tag{cache.ListTag(cache.ResourceItemOverrides)}
		},
	)
}

// UpdateOverride patches an override and invalidates the record and list.
func (m *Menu) UpdateOverride(ctx context.Context, id int64, req api.UpdateMenuItemOverrideRequest) (*api.MenuItemOverride, error) {
	return mutate(ctx, m.c.cache, cache.ResourceItemOverride,
		func(ctx context.Context) (*api.MenuItemOverride, error) { return m.c.api.Menu().UpdateOverride(ctx, id, req) },
		func(*api.MenuItemOverride) []cache.Tag {
			return []cache.Tag{
				cache.ItemTag(cache.ResourceItemOverride, id),
				cache.ListTag(cache.ResourceItemOverrides),
			}
		},
	)
}

// DeleteOverride removes an override and invalidates the override list.
func (m *Menu) DeleteOverride(ctx context.Context, id int64) error {
	return mutateVoid(ctx, m.c.cache, cache.ResourceItemOverride,
		func(ctx context.Context) error { return m.c.api.Menu().DeleteOverride(ctx, id) },
		cache.ListTag(cache.ResourceItemOverrides),
	)
}
