package api

import (
	"encoding/json"
	"time"

	"github.com/cafehub/go-admin-client/roles"
)

// Profile holds the personal details attached to a user account. The backend
// contract guarantees exactly one profile record per user; the wire format
// still carries it as a one-element array, which Profile unwraps on decode.
type Profile struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

type profileRecord struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// UnmarshalJSON accepts either a bare profile object or the backend's
// one-element array form. An empty array decodes to the zero Profile rather
// than failing.
func (p *Profile) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var records []profileRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return err
		}
		if len(records) > 0 {
			*p = Profile(records[0])
		}
		return nil
	}
	var record profileRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}
	*p = Profile(record)
	return nil
}

// User is a staff account as returned by the backend.
type User struct {
	ID        int64          `json:"id"`
	Email     string         `json:"email"`
	Role      roles.RoleType `json:"role"`
	Profile   Profile        `json:"UserProfile"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// UserWithRelations extends User with the brand and location assignments the
// user detail endpoint includes.
type UserWithRelations struct {
	User
	Brands    []Brand         `json:"Brand,omitempty"`
	Locations []Location      `json:"Location,omitempty"`
	Staff     []LocationStaff `json:"LocationStaff,omitempty"`
}

// Brand is a coffee-shop chain owned by a single user.
type Brand struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	OwnerID   int64      `json:"ownerId"`
	Owner     *User      `json:"owner,omitempty"`
	Locations []Location `json:"Location,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CreateBrandRequest creates a brand. OwnerID is optional; the backend
// defaults it to the calling user.
type CreateBrandRequest struct {
	Name    string `json:"name"`
	OwnerID *int64 `json:"ownerId,omitempty"`
}

// UpdateBrandRequest patches a brand. Nil fields are left unchanged.
type UpdateBrandRequest struct {
	Name *string `json:"name,omitempty"`
}

// Location is a physical shop belonging to a brand.
type Location struct {
	ID         int64           `json:"id"`
	Latitude   float64         `json:"latitude"`
	Longitude  float64         `json:"longitude"`
	PlaceID    *string         `json:"placeId,omitempty"`
	Name       *string         `json:"name,omitempty"`
	Address    *string         `json:"address,omitempty"`
	City       *string         `json:"city,omitempty"`
	State      *string         `json:"state,omitempty"`
	Country    *string         `json:"country,omitempty"`
	PostalCode *string         `json:"postalCode,omitempty"`
	Geohash    *string         `json:"geohash,omitempty"`
	Timezone   *string         `json:"timezone,omitempty"`
	Accuracy   *float64        `json:"accuracy,omitempty"`
	ManagerID  *int64          `json:"managerId,omitempty"`
	Manager    *User           `json:"manager,omitempty"`
	BrandID    int64           `json:"BrandId"`
	Brand      *Brand          `json:"Brand,omitempty"`
	Staff      []LocationStaff `json:"LocationStaff,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// LocationStaff is an employee assignment visible on a location.
type LocationStaff struct {
	ID      int64          `json:"id"`
	Email   string         `json:"email"`
	Role    roles.RoleType `json:"role"`
	Profile Profile        `json:"UserProfile"`
}

// CreateLocationRequest creates a location under a brand.
type CreateLocationRequest struct {
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	PlaceID    *string  `json:"placeId,omitempty"`
	Name       *string  `json:"name,omitempty"`
	Address    *string  `json:"address,omitempty"`
	City       *string  `json:"city,omitempty"`
	State      *string  `json:"state,omitempty"`
	Country    *string  `json:"country,omitempty"`
	PostalCode *string  `json:"postalCode,omitempty"`
	Geohash    *string  `json:"geohash,omitempty"`
	Timezone   *string  `json:"timezone,omitempty"`
	Accuracy   *float64 `json:"accuracy,omitempty"`
	ManagerID  *int64   `json:"managerId,omitempty"`
	BrandID    int64    `json:"BrandId"`
}

// UpdateLocationRequest patches a location. Nil fields are left unchanged.
type UpdateLocationRequest struct {
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	PlaceID    *string  `json:"placeId,omitempty"`
	Name       *string  `json:"name,omitempty"`
	Address    *string  `json:"address,omitempty"`
	City       *string  `json:"city,omitempty"`
	State      *string  `json:"state,omitempty"`
	Country    *string  `json:"country,omitempty"`
	PostalCode *string  `json:"postalCode,omitempty"`
	Geohash    *string  `json:"geohash,omitempty"`
	Timezone   *string  `json:"timezone,omitempty"`
	Accuracy   *float64 `json:"accuracy,omitempty"`
	ManagerID  *int64   `json:"managerId,omitempty"`
}

// AuthResponse is the token pair returned by sign-in and refresh.
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// SignInCredentials authenticates an existing staff account.
type SignInCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpCredentials creates a new staff account.
type SignUpCredentials struct {
	Email     string         `json:"email"`
	Password  string         `json:"password"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Role      roles.RoleType `json:"role"`
}

// InviteUserRequest invites a new user by email.
type InviteUserRequest struct {
	Email string `json:"email"`
}

// InviteUserResponse carries the generated credentials for an invited user.
type InviteUserResponse struct {
	Message           string `json:"message"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	TemporaryPassword string `json:"temporaryPassword"`
}

// UpdateUserProfileRequest patches a user's profile fields.
type UpdateUserProfileRequest struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// AssignUserToBrandRequest links a user to a brand.
type AssignUserToBrandRequest struct {
	UserID  int64 `json:"userId"`
	BrandID int64 `json:"brandId"`
}

// AssignUserToLocationRequest links a user to a location, optionally as its
// manager.
type AssignUserToLocationRequest struct {
	UserID     int64 `json:"userId"`
	LocationID int64 `json:"locationId"`
	IsManager  bool  `json:"isManager"`
}
