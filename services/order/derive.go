// File: services/order/derive.go
package order

import (
	"fmt"
	"strconv"
	"time"

	"github.com/eassylife/b2bportal/models"
)

// OptionItem is a single selectable value/label pair for a form field.
type OptionItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// findCategory returns the category with the given ID, or nil.
func findCategory(cats []models.ServiceCategory, categoryID string) *models.ServiceCategory {
	for i := range cats {
		if cats[i].ID == categoryID {
			return &cats[i]
		}
	}
	return nil
}

// SubcategoryOptions lists the subcategories of the selected category. Empty
// until a category is chosen.
func SubcategoryOptions(cats []models.ServiceCategory, categoryID string) []OptionItem {
	cat := findCategory(cats, categoryID)
	if cat == nil {
		return nil
	}
	items := make([]OptionItem, 0, len(cat.Subcategories))
	for _, sub := range cat.Subcategories {
		items = append(items, OptionItem{Value: sub.ID, Label: sub.Name})
	}
	return items
}

// AttributeOptions lists the attributes of the selected category that are
// scoped to the selected subcategory or unscoped. With no subcategory chosen
// only unscoped attributes apply.
func AttributeOptions(cats []models.ServiceCategory, categoryID, subcategoryID string) []models.Attribute {
	cat := findCategory(cats, categoryID)
	if cat == nil {
		return nil
	}
	var attrs []models.Attribute
	for _, attr := range cat.Attributes {
		unscoped := attr.SubcategoryID == nil
		if unscoped || (subcategoryID != "" && *attr.SubcategoryID == subcategoryID) {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// OptionValues enumerates an attribute's own options. An option's value is
// its identifier when present, else its raw value.
func OptionValues(attr models.Attribute) []OptionItem {
	items := make([]OptionItem, 0, len(attr.Options))
	for _, opt := range attr.Options {
		value := opt.Value
		if opt.ID != nil {
			value = strconv.Itoa(*opt.ID)
		}
		items = append(items, OptionItem{Value: value, Label: opt.Value})
	}
	return items
}

// SegmentOptions lists segments matching the (category, subcategory) pair.
func SegmentOptions(cats []models.ServiceCategory, categoryID, subcategoryID string) []OptionItem {
	cat := findCategory(cats, categoryID)
	if cat == nil {
		return nil
	}
	var items []OptionItem
	for _, seg := range cat.ServiceSegments {
		if seg.CategoryID == categoryID && seg.SubcategoryID == subcategoryID {
			items = append(items, OptionItem{Value: seg.ID, Label: seg.SegmentName})
		}
	}
	return items
}

// SegmentStepVisible reports whether the segment step appears at all. With
// zero matching segments the step is omitted from the form entirely, not
// merely disabled.
func SegmentStepVisible(cats []models.ServiceCategory, categoryID, subcategoryID string) bool {
	return len(SegmentOptions(cats, categoryID, subcategoryID)) > 0
}

// ComposeAddress builds the single human-readable address string that gets
// submitted with an order: store name, line 1, optional line 2, optional
// landmark, city, state, pincode.
func ComposeAddress(addr models.Address) string {
	composed := addr.StoreName + ", " + addr.AddressLine1
	if addr.AddressLine2 != nil && *addr.AddressLine2 != "" {
		composed += ", " + *addr.AddressLine2
	}
	composed += ", "
	if addr.Landmark != nil && *addr.Landmark != "" {
		composed += *addr.Landmark + ", "
	}
	composed += addr.City + ", " + addr.State + " - " + addr.Pincode
	return composed
}

// DateOptions enumerates every calendar day from the slot window's start
// date through its end date, inclusive. Values are ISO dates; labels a short
// weekday/day/month/year string.
func DateOptions(slot *models.SlotTimingData) []OptionItem {
	if slot == nil {
		return nil
	}
	start := time.Date(slot.TimeSlotStartYear, time.Month(slot.TimeSlotStartMonth),
		slot.TimeSlotStartDate, 0, 0, 0, 0, time.UTC)
	end, err := time.Parse("02-01-2006", slot.TimeSlotEndDateString)
	if err != nil {
		return nil
	}

	var dates []OptionItem
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		dates = append(dates, OptionItem{
			Value: cur.Format("2006-01-02"),
			Label: cur.Format("Mon, 02 Jan 2006"),
		})
	}
	return dates
}

// TimeSlotOptions enumerates every whole hour in [nextslotstart,
// nextslotend). Values are 24-hour "HH:00" strings; labels a 12-hour clock.
func TimeSlotOptions(slot *models.SlotTimingData) []OptionItem {
	if slot == nil {
		return nil
	}
	var slots []OptionItem
	for hour := slot.NextSlotStart; hour < slot.NextSlotEnd; hour++ {
		at := time.Date(2000, 1, 1, hour, 0, 0, 0, time.UTC)
		slots = append(slots, OptionItem{
			Value: fmt.Sprintf("%02d:00", hour),
			Label: at.Format("03:04 PM"),
		})
	}
	return slots
}
