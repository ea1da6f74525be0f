package api

import "context"

// BrandsAPI covers the brand CRUD endpoints.
type BrandsAPI struct {
	c *Client
}

// List returns all brands visible to the current user.
func (b *BrandsAPI) List(ctx context.Context) ([]Brand, error) {
	var out []Brand
	if err := b.c.get(ctx, "/brands", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns a single brand by id.
func (b *BrandsAPI) Get(ctx context.Context, id int64) (*Brand, error) {
	var out Brand
	if err := b.c.get(ctx, idPath("/brands", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create creates a brand. Super admin only.
func (b *BrandsAPI) Create(ctx context.Context, req CreateBrandRequest) (*Brand, error) {
	var out Brand
	if err := b.c.post(ctx, "/brands", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches a brand and returns the server's resulting record.
func (b *BrandsAPI) Update(ctx context.Context, id int64, req UpdateBrandRequest) (*Brand, error) {
	var out Brand
	if err := b.c.patch(ctx, idPath("/brands", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a brand.
func (b *BrandsAPI) Delete(ctx context.Context, id int64) error {
	return b.c.delete(ctx, idPath("/brands", id))
}
