package api

import (
	"context"
	"fmt"
)

// MenuAPI covers menu templates, template items, menus and per-location item
// overrides.
type MenuAPI struct {
	c *Client
}

// Templates returns all menu templates visible to the current user.
func (m *MenuAPI) Templates(ctx context.Context) ([]MenuTemplate, error) {
	var out []MenuTemplate
	if err := m.c.get(ctx, "/menu/templates", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TemplatesByBrand returns the templates belonging to a brand.
func (m *MenuAPI) TemplatesByBrand(ctx context.Context, brandID int64) ([]MenuTemplate, error) {
	var out []MenuTemplate
	if err := m.c.get(ctx, fmt.Sprintf("/menu/templates/brand/%d", brandID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Template returns a single template by id.
func (m *MenuAPI) Template(ctx context.Context, id int64) (*MenuTemplate, error) {
	var out MenuTemplate
	if err := m.c.get(ctx, idPath("/menu/templates", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTemplate creates a menu template.
func (m *MenuAPI) CreateTemplate(ctx context.Context, req CreateMenuTemplateRequest) (*MenuTemplate, error) {
	var out MenuTemplate
	if err := m.c.post(ctx, "/menu/templates", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTemplate patches a template.
func (m *MenuAPI) UpdateTemplate(ctx context.Context, id int64, req UpdateMenuTemplateRequest) (*MenuTemplate, error) {
	var out MenuTemplate
	if err := m.c.patch(ctx, idPath("/menu/templates", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTemplate removes a template.
func (m *MenuAPI) DeleteTemplate(ctx context.Context, id int64) error {
	return m.c.delete(ctx, idPath("/menu/templates", id))
}

// TemplateItems returns all template items.
func (m *MenuAPI) TemplateItems(ctx context.Context) ([]TemplateItem, error) {
	var out []TemplateItem
	if err := m.c.get(ctx, "/menu/template-items", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TemplateItemsByTemplate returns the items on one template.
func (m *MenuAPI) TemplateItemsByTemplate(ctx context.Context, templateID int64) ([]TemplateItem, error) {
	var out []TemplateItem
	if err := m.c.get(ctx, fmt.Sprintf("/menu/template-items/template/%d", templateID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TemplateItem returns a single template item by id.
func (m *MenuAPI) TemplateItem(ctx context.Context, id int64) (*TemplateItem, error) {
	var out TemplateItem
	if err := m.c.get(ctx, idPath("/menu/template-items", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTemplateItem adds an item to a template.
func (m *MenuAPI) CreateTemplateItem(ctx context.Context, req CreateTemplateItemRequest) (*TemplateItem, error) {
	var out TemplateItem
	if err := m.c.post(ctx, "/menu/template-items", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTemplateItem patches a template item.
func (m *MenuAPI) UpdateTemplateItem(ctx context.Context, id int64, req UpdateTemplateItemRequest) (*TemplateItem, error) {
	var out TemplateItem
	if err := m.c.patch(ctx, idPath("/menu/template-items", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTemplateItem removes a template item.
func (m *MenuAPI) DeleteTemplateItem(ctx context.Context, id int64) error {
	return m.c.delete(ctx, idPath("/menu/template-items", id))
}

// Menus returns all menus.
func (m *MenuAPI) Menus(ctx context.Context) ([]Menu, error) {
	var out []Menu
	if err := m.c.get(ctx, "/menu", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MenuByLocation returns the menu assigned to a location.
func (m *MenuAPI) MenuByLocation(ctx context.Context, locationID int64) (*Menu, error) {
	var out Menu
	if err := m.c.get(ctx, fmt.Sprintf("/menu/location/%d", locationID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Menu returns a single menu by id.
func (m *MenuAPI) Menu(ctx context.Context, id int64) (*Menu, error) {
	var out Menu
	if err := m.c.get(ctx, idPath("/menu", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMenu assigns a template to a location.
func (m *MenuAPI) CreateMenu(ctx context.Context, req CreateMenuRequest) (*Menu, error) {
	var out Menu
	if err := m.c.post(ctx, "/menu", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMenu switches a menu to a different template.
func (m *MenuAPI) UpdateMenu(ctx context.Context, id int64, req UpdateMenuRequest) (*Menu, error) {
	var out Menu
	if err := m.c.patch(ctx, idPath("/menu", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMenu removes a menu.
func (m *MenuAPI) DeleteMenu(ctx context.Context, id int64) error {
	return m.c.delete(ctx, idPath("/menu", id))
}

// OverridesByMenu returns the item overrides on a menu.
func (m *MenuAPI) OverridesByMenu(ctx context.Context, menuID int64) ([]MenuItemOverride, error) {
	var out []MenuItemOverride
	if err := m.c.get(ctx, fmt.Sprintf("/menu/item-overrides/menu/%d", menuID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateOverride overrides a template item on a menu.
func (m *MenuAPI) CreateOverride(ctx context.Context, req CreateMenuItemOverrideRequest) (*MenuItemOverride, error) {
	var out MenuItemOverride
	if err := m.c.post(ctx, "/menu/item-overrides", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOverride patches an override.
func (m *MenuAPI) UpdateOverride(ctx context.Context, id int64, req UpdateMenuItemOverrideRequest) (*MenuItemOverride, error) {
	var out MenuItemOverride
	if err := m.c.patch(ctx, idPath("/menu/item-overrides", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteOverride removes an override.
func (m *MenuAPI) DeleteOverride(ctx context.Context, id int64) error {
	return m.c.delete(ctx, idPath("/menu/item-overrides", id))
}
