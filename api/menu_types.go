package api

import "time"

// MenuTemplate is a brand-level menu definition that locations instantiate.
type MenuTemplate struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	BrandID   int64     `json:"brandId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateMenuTemplateRequest creates a template for a brand.
type CreateMenuTemplateRequest struct {
	Name    string `json:"name"`
	BrandID int64  `json:"brandId"`
}

// UpdateMenuTemplateRequest patches a template.
type UpdateMenuTemplateRequest struct {
	Name *string `json:"name,omitempty"`
}

// TemplateItemVariant is a size/option variant on a template item.
type TemplateItemVariant struct {
	ID             int64     `json:"id"`
	Label          string    `json:"label"`
	Price          float64   `json:"price"`
	TemplateItemID int64     `json:"templateItemId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TemplateItem is a product on a menu template.
type TemplateItem struct {
	ID          int64                 `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Price       *float64              `json:"price,omitempty"`
	ImageURL    *string               `json:"imageUrl,omitempty"`
	Available   bool                  `json:"available"`
	MenuOrder   int                   `json:"menuOrder"`
	TemplateID  int64                 `json:"templateId"`
	Variants    []TemplateItemVariant `json:"variants,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// TemplateItemVariantInput creates or replaces a variant on a template item.
type TemplateItemVariantInput struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// CreateTemplateItemRequest adds an item to a template.
type CreateTemplateItemRequest struct {
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Category    string                     `json:"category"`
	Price       *float64                   `json:"price,omitempty"`
	ImageURL    *string                    `json:"imageUrl,omitempty"`
	Available   *bool                      `json:"available,omitempty"`
	MenuOrder   *int                       `json:"menuOrder,omitempty"`
	TemplateID  int64                      `json:"templateId"`
	Variants    []TemplateItemVariantInput `json:"variants,omitempty"`
}

// UpdateTemplateItemRequest patches a template item.
type UpdateTemplateItemRequest struct {
	Name        *string                    `json:"name,omitempty"`
	Description *string                    `json:"description,omitempty"`
	Category    *string                    `json:"category,omitempty"`
	Price       *float64                   `json:"price,omitempty"`
	ImageURL    *string                    `json:"imageUrl,omitempty"`
	Available   *bool                      `json:"available,omitempty"`
	MenuOrder   *int                       `json:"menuOrder,omitempty"`
	Variants    []TemplateItemVariantInput `json:"variants,omitempty"`
}

// Menu instantiates a template at a location.
type Menu struct {
	ID         int64              `json:"id"`
	LocationID int64              `json:"locationId"`
	TemplateID int64              `json:"templateId"`
	Template   *MenuTemplate      `json:"template,omitempty"`
	Overrides  []MenuItemOverride `json:"menuItemOverrides,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// CreateMenuRequest assigns a template to a location.
type CreateMenuRequest struct {
	LocationID int64 `json:"locationId"`
	TemplateID int64 `json:"templateId"`
}

// UpdateMenuRequest switches a menu to a different template.
type UpdateMenuRequest struct {
	TemplateID *int64 `json:"templateId,omitempty"`
}

// MenuItemOverrideVariant is a per-location variant adjustment.
type MenuItemOverrideVariant struct {
	ID                int64     `json:"id"`
	OriginalVariantID int64     `json:"originalVariantId"`
	Label             *string   `json:"label,omitempty"`
	Price             *float64  `json:"price,omitempty"`
	Available         bool      `json:"available"`
	OverrideID        int64     `json:"overrideId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// MenuItemOverride is a per-location adjustment of a template item.
type MenuItemOverride struct {
	ID             int64                     `json:"id"`
	TemplateItemID int64                     `json:"templateItemId"`
	MenuID         int64                     `json:"menuId"`
	Name           *string                   `json:"name,omitempty"`
	Description    *string                   `json:"description,omitempty"`
	Price          *float64                  `json:"price,omitempty"`
	ImageURL       *string                   `json:"imageUrl,omitempty"`
	Available      bool                      `json:"available"`
	MenuOrder      *int                      `json:"menuOrder,omitempty"`
	Variants       []MenuItemOverrideVariant `json:"variants,omitempty"`
	CreatedAt      time.Time                 `json:"createdAt"`
	UpdatedAt      time.Time                 `json:"updatedAt"`
}

// CreateMenuItemOverrideRequest overrides a template item on a menu.
type CreateMenuItemOverrideRequest struct {
	TemplateItemID int64    `json:"templateItemId"`
	MenuID         int64    `json:"menuId"`
	Name           *string  `json:"name,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Price          *float64 `json:"price,omitempty"`
	ImageURL       *string  `json:"imageUrl,omitempty"`
	Available      *bool    `json:"available,omitempty"`
	MenuOrder      *int     `json:"menuOrder,omitempty"`
}

// UpdateMenuItemOverrideRequest patches an override.
type UpdateMenuItemOverrideRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Available   *bool    `json:"available,omitempty"`
	MenuOrder   *int     `json:"menuOrder,omitempty"`
}
