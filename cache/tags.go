// Package cache avoids redundant round-trips and keeps dependent reads
// consistent after mutations. Fetched results are labelled with provided
// tags; mutations declare the tags they invalidate, and any cached result
// whose tags intersect is marked stale and refetched on its next read.
package cache

import "strconv"

// ListID is the sentinel id for list-level cache keys and tags. It is
// distinct from any real numeric id so "item changed" and "collection needs
// refetch" can be expressed independently.
const ListID = "LIST"

// Resource type names used in keys and tags. Singular names tag individual
// records, plural names tag collections, mirroring the backend's resources.
const (
	ResourceAuth          = "Auth"
	ResourceUser          = "User"
	ResourceUsers         = "Users"
	ResourceBrand         = "Brand"
	ResourceBrands        = "Brands"
	ResourceLocation      = "Location"
	ResourceLocations     = "Locations"
	ResourceLocationStaff = "LocationStaff"
	ResourceMenu          = "Menu"
	ResourceMenus         = "Menus"
	ResourceMenuTemplate  = "MenuTemplate"
	ResourceMenuTemplates = "MenuTemplates"
	ResourceTemplateItem  = "TemplateItem"
	ResourceTemplateItems = "TemplateItems"
	ResourceItemOverride  = "MenuItemOverride"
	ResourceItemOverrides = "MenuItemOverrides"
)

// Tag labels cached data so mutations can find it. A tag is either
// item-level (resource + id) or list-level (resource + ListID).
type Tag struct {
	Resource string
	ID       string
}

// ItemTag tags a single record.
func ItemTag(resource string, id int64) Tag {
	return Tag{Resource: resource, ID: strconv.FormatInt(id, 10)}
}

// ListTag tags a whole collection.
func ListTag(resource string) Tag {
	return Tag{Resource: resource, ID: ListID}
}

// Key identifies one cached query: a resource type plus an id or the list
// sentinel. Parameterized list queries append their parameter to the id.
type Key struct {
	Resource string
	ID       string
}

func (k Key) String() string {
	return k.Resource + "/" + k.ID
}

// ItemKey keys a single-record query.
func ItemKey(resource string, id int64) Key {
	return Key{Resource: resource, ID: strconv.FormatInt(id, 10)}
}

// ListKey keys a whole-collection query.
func ListKey(resource string) Key {
	return Key{Resource: resource, ID: ListID}
}

// ScopedListKey keys a parameterized collection query, e.g. locations of one
// brand. Scoped lists still provide the plain list tag so list-level
// invalidation reaches them.
func ScopedListKey(resource, scope string, id int64) Key {
	return Key{Resource: resource, ID: ListID + ":" + scope + ":" + strconv.FormatInt(id, 10)}
}
