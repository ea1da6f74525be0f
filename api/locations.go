package api

import (
	"context"
	"fmt"
)

// LocationsAPI covers the location CRUD endpoints and the staff sub-resource.
type LocationsAPI struct {
	c *Client
}

// List returns all locations visible to the current user.
func (l *LocationsAPI) List(ctx context.Context) ([]Location, error) {
	var out []Location
	if err := l.c.get(ctx, "/locations", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByBrand returns the locations belonging to a brand.
func (l *LocationsAPI) ListByBrand(ctx context.Context, brandID int64) ([]Location, error) {
	var out []Location
	if err := l.c.get(ctx, fmt.Sprintf("/brands/%d/locations", brandID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns a single location by id.
func (l *LocationsAPI) Get(ctx context.Context, id int64) (*Location, error) {
	var out Location
	if err := l.c.get(ctx, idPath("/locations", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create creates a location under a brand. Brand owner only.
func (l *LocationsAPI) Create(ctx context.Context, req CreateLocationRequest) (*Location, error) {
	var out Location
	if err := l.c.post(ctx, "/locations", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches a location and returns the server's resulting record.
func (l *LocationsAPI) Update(ctx context.Context, id int64, req UpdateLocationRequest) (*Location, error) {
	var out Location
	if err := l.c.patch(ctx, idPath("/locations", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a location.
func (l *LocationsAPI) Delete(ctx context.Context, id int64) error {
	return l.c.delete(ctx, idPath("/locations", id))
}

// Staff returns the employees assigned to a location.
func (l *LocationsAPI) Staff(ctx context.Context, locationID int64) ([]LocationStaff, error) {
	var out []LocationStaff
	if err := l.c.get(ctx, fmt.Sprintf("/locations/%d/staff", locationID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignStaff assigns an employee to a location.
func (l *LocationsAPI) AssignStaff(ctx context.Context, locationID, staffID int64) (*LocationStaff, error) {
	var out LocationStaff
	body := map[string]int64{"staffId": staffID}
	if err := l.c.post(ctx, fmt.Sprintf("/locations/%d/staff", locationID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveStaff removes an employee assignment from a location.
func (l *LocationsAPI) RemoveStaff(ctx context.Context, locationID, staffID int64) error {
	return l.c.delete(ctx, fmt.Sprintf("/locations/%d/staff/%d", locationID, staffID))
}
