// models/catalog.go
package models

// Option is a single selectable value within an attribute.
type Option struct {
	ID    *int   `json:"id,omitempty"`
	Value string `json:"value"`
}

// ServiceSegment is an optional extra scoping dimension beneath a
// (category, subcategory) pair. Pairs with zero segments skip the
// segment-selection step entirely.
type ServiceSegment struct {
	ID            string `json:"id"`
	CategoryID    string `json:"category_id"`
	SubcategoryID string `json:"subcategory_id"`
	SegmentName   string `json:"segment_name"`
}

// Attribute belongs to a category and is either scoped to one subcategory or
// unscoped (nil SubcategoryID, applies regardless of subcategory).
type Attribute struct {
	ID            string   `json:"id"`
	CategoryID    string   `json:"category_id"`
	SubcategoryID *string  `json:"subcategory_id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"` // "dropdown" or "list"
	Title         string   `json:"title"`
	Weight        int      `json:"weight"`
	IsActive      int      `json:"is_active"`
	IsRequired    int      `json:"is_required"`
	IsLinked      int      `json:"is_linked"`
	Options       []Option `json:"options"`
}

// Subcategory is the second level of the catalog tree.
type Subcategory struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"category_id"`
	Image       string  `json:"image"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ServiceTime *string `json:"service_time"`
	Active      int     `json:"active"`
	ServiceType string  `json:"service_type"`
	SACCode     *string `json:"sac_code"`
	Slug        *string `json:"slug"`
}

// ServiceCategory is the root of the catalog tree, fetched as one document.
type ServiceCategory struct {
	ID              string           `json:"id"`
	Image           string           `json:"image"`
	Name            string           `json:"name"`
	ServiceTime     *string          `json:"service_time"`
	Active          int              `json:"active"`
	ServiceType     string           `json:"service_type"`
	IsHome          int              `json:"is_home"`
	LocationType    string           `json:"location_type"`
	LocationMethod  string           `json:"location_method"`
	Weight          *int             `json:"weight"`
	SACCode         *string          `json:"sac_code"`
	SourceType      string           `json:"source_type"`
	Slug            *string          `json:"slug"`
	Subcategories   []Subcategory    `json:"subcategories"`
	Attributes      []Attribute      `json:"attributes"`
	ServiceSegments []ServiceSegment `json:"serviceSegments"`
}
