// File: services/order/form.go
package order

import (
	"github.com/eassylife/b2bportal/models"
)

// EventKind identifies a single field mutation of the order draft.
type EventKind string

const (
	SelectCategory     EventKind = "select_category"
	SelectSubcategory  EventKind = "select_subcategory"
	SelectAttribute    EventKind = "select_attribute"
	SelectOption       EventKind = "select_option"
	SelectSegment      EventKind = "select_segment"
	SelectAddress      EventKind = "select_address"
	SelectDate         EventKind = "select_date"
	SelectTime         EventKind = "select_time"
	SelectLocationZone EventKind = "select_location_zone"
	SelectCityZone     EventKind = "select_city_zone"
	SetDescription     EventKind = "set_description"
	SetPriority        EventKind = "set_priority"
)

// Event is one user selection applied to the draft.
type Event struct {
	Kind  EventKind `json:"kind" binding:"required"`
	Value string    `json:"value"`
}

// Apply is a pure reducer over (draft, event). Upstream selections invalidate
// and reset every downstream selection so stale combinations can never be
// submitted: a category change resets subcategory, attribute, option and
// segment; a subcategory change resets attribute, option and segment.
func Apply(d *Draft, ev Event) {
	form := &d.Form
	switch ev.Kind {
	case SelectCategory:
		form.CategoryID = ev.Value
		form.SubcategoryID = ""
		form.FilterAttributeID = ""
		form.FilterOption = ""
		form.SegmentOption = ""
	case SelectSubcategory:
		form.SubcategoryID = ev.Value
		form.FilterAttributeID = ""
		form.FilterOption = ""
		form.SegmentOption = ""
	case SelectAttribute:
		form.FilterAttributeID = ev.Value
		form.FilterOption = ""
	case SelectOption:
		form.FilterOption = ev.Value
	case SelectSegment:
		form.SegmentOption = ev.Value
	case SelectAddress:
		form.AddressID = ev.Value
		form.Address = ""
		if addr := d.findAddress(ev.Value); addr != nil {
			form.Address = ComposeAddress(*addr)
		}
	case SelectDate:
		form.PreferredDate = ev.Value
	case SelectTime:
		form.PreferredTime = ev.Value
	case SelectLocationZone:
		form.LocationZone = ev.Value
		form.CityZone = ""
	case SelectCityZone:
		form.CityZone = ev.Value
	case SetDescription:
		form.Description = ev.Value
	case SetPriority:
		form.Priority = ev.Value
	}
}

func (d *Draft) findAddress(addressID string) *models.Address {
	for i := range d.Addresses {
		if d.Addresses[i].ID == addressID {
			return &d.Addresses[i]
		}
	}
	return nil
}

// Options is the set of selectable values derived from the draft's current
// selections and its fetched catalog/slot data. Derivation is purely local;
// no network call happens per selection except provider search and city-zone
// lookup, which the service layer attaches.
type Options struct {
	Categories     []OptionItem       `json:"categories"`
	Subcategories  []OptionItem       `json:"subcategories"`
	Attributes     []models.Attribute `json:"attributes"`
	Options        []OptionItem       `json:"options"`
	Segments       []OptionItem       `json:"segments,omitempty"`
	SegmentVisible bool               `json:"segmentVisible"`
	Addresses      []models.Address   `json:"addresses"`
	Dates          []OptionItem       `json:"dates"`
	TimeSlots      []OptionItem       `json:"timeSlots"`
	LocationZones  []models.LocationZone `json:"locationZones"`
	CityZones      []models.LocationZone `json:"cityZones"`
}

// DeriveOptions computes every selectable option set for the draft.
func DeriveOptions(d *Draft) Options {
	opts := Options{
		Subcategories:  SubcategoryOptions(d.Categories, d.Form.CategoryID),
		Attributes:     AttributeOptions(d.Categories, d.Form.CategoryID, d.Form.SubcategoryID),
		SegmentVisible: SegmentStepVisible(d.Categories, d.Form.CategoryID, d.Form.SubcategoryID),
		Addresses:      d.Addresses,
		Dates:          DateOptions(d.Slot),
		TimeSlots:      TimeSlotOptions(d.Slot),
		LocationZones:  d.LocationZones,
		CityZones:      d.CityZones,
	}
	for _, cat := range d.Categories {
		opts.Categories = append(opts.Categories, OptionItem{Value: cat.ID, Label: cat.Name})
	}
	if opts.SegmentVisible {
		opts.Segments = SegmentOptions(d.Categories, d.Form.CategoryID, d.Form.SubcategoryID)
	}
	if d.Form.FilterAttributeID != "" {
		for _, attr := range opts.Attributes {
			if attr.ID == d.Form.FilterAttributeID {
				opts.Options = OptionValues(attr)
				break
			}
		}
	}
	return opts
}

// SubmitReady reports whether the draft can be submitted: category,
// subcategory and a composed address string must all be non-empty.
func (d *Draft) SubmitReady() bool {
	return d.Form.CategoryID != "" && d.Form.SubcategoryID != "" && d.Form.Address != ""
}
