package order

import (
	"testing"

	"github.com/eassylife/b2bportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureDraft() *Draft {
	return &Draft{
		ID:         "d-1",
		Categories: fixtureCatalog(),
		Addresses: []models.Address{
			{
				ID: "ADDR1", StoreName: "Main Store", AddressLine1: "12 High St",
				City: "Mumbai", State: "Maharashtra", Pincode: "400001",
			},
		},
		Slot: &models.SlotTimingData{
			TimeSlotStartYear: 2025, TimeSlotStartMonth: 9, TimeSlotStartDate: 1,
			TimeSlotEndDateString: "03-09-2025",
			NextSlotStart:         10, NextSlotEnd: 12,
		},
	}
}

func TestApply_CategoryResetsDownstream(t *testing.T) {
	d := fixtureDraft()
	d.Form = models.OrderForm{
		CategoryID:        "C1",
		SubcategoryID:     "S1",
		FilterAttributeID: "A1",
		FilterOption:      "1",
		SegmentOption:     "G1",
		PreferredDate:     "2025-09-01",
	}

	Apply(d, Event{Kind: SelectCategory, Value: "C2"})

	assert.Equal(t, "C2", d.Form.CategoryID)
	assert.Empty(t, d.Form.SubcategoryID)
	assert.Empty(t, d.Form.FilterAttributeID)
	assert.Empty(t, d.Form.FilterOption)
	assert.Empty(t, d.Form.SegmentOption)
	// Fields outside the dependency chain survive.
	assert.Equal(t, "2025-09-01", d.Form.PreferredDate)
}

func TestApply_SubcategoryResetsDownstream(t *testing.T) {
	d := fixtureDraft()
	d.Form = models.OrderForm{
		CategoryID:        "C1",
		SubcategoryID:     "S1",
		FilterAttributeID: "A1",
		FilterOption:      "1",
		SegmentOption:     "G1",
	}

	Apply(d, Event{Kind: SelectSubcategory, Value: "S2"})

	assert.Equal(t, "C1", d.Form.CategoryID)
	assert.Equal(t, "S2", d.Form.SubcategoryID)
	assert.Empty(t, d.Form.FilterAttributeID)
	assert.Empty(t, d.Form.FilterOption)
	assert.Empty(t, d.Form.SegmentOption)
}

func TestApply_AttributeResetsOption(t *testing.T) {
	d := fixtureDraft()
	d.Form.FilterAttributeID = "A1"
	d.Form.FilterOption = "1"

	Apply(d, Event{Kind: SelectAttribute, Value: "A2"})

	assert.Equal(t, "A2", d.Form.FilterAttributeID)
	assert.Empty(t, d.Form.FilterOption)
}

func TestApply_LocationZoneResetsCityZone(t *testing.T) {
	d := fixtureDraft()
	d.Form.LocationZone = "Z1"
	d.Form.CityZone = "CZ1"

	Apply(d, Event{Kind: SelectLocationZone, Value: "Z2"})

	assert.Equal(t, "Z2", d.Form.LocationZone)
	assert.Empty(t, d.Form.CityZone)
}

func TestApply_SelectAddressComposes(t *testing.T) {
	d := fixtureDraft()

	Apply(d, Event{Kind: SelectAddress, Value: "ADDR1"})

	assert.Equal(t, "ADDR1", d.Form.AddressID)
	assert.Equal(t, "Main Store, 12 High St, Mumbai, Maharashtra - 400001", d.Form.Address)

	// Unknown address clears the composed string instead of keeping a stale one.
	Apply(d, Event{Kind: SelectAddress, Value: "nope"})
	assert.Equal(t, "nope", d.Form.AddressID)
	assert.Empty(t, d.Form.Address)
}

func TestSubmitReady(t *testing.T) {
	d := fixtureDraft()
	assert.False(t, d.SubmitReady())

	Apply(d, Event{Kind: SelectCategory, Value: "C1"})
	assert.False(t, d.SubmitReady())

	Apply(d, Event{Kind: SelectSubcategory, Value: "S1"})
	assert.False(t, d.SubmitReady())

	Apply(d, Event{Kind: SelectAddress, Value: "ADDR1"})
	assert.True(t, d.SubmitReady())
}

// Walks a full selection sequence the way an operator would, checking the
// derived option sets at each step.
func TestDeriveOptions_SelectionWalk(t *testing.T) {
	d := fixtureDraft()

	opts := DeriveOptions(d)
	require.Len(t, opts.Categories, 2)
	assert.Empty(t, opts.Subcategories)
	assert.Empty(t, opts.Options)
	assert.False(t, opts.SegmentVisible)
	require.Len(t, opts.Dates, 3)
	require.Len(t, opts.TimeSlots, 2)

	Apply(d, Event{Kind: SelectCategory, Value: "C1"})
	opts = DeriveOptions(d)
	require.Len(t, opts.Subcategories, 2)
	require.Len(t, opts.Attributes, 1, "only unscoped attributes before a subcategory")

	Apply(d, Event{Kind: SelectSubcategory, Value: "S1"})
	opts = DeriveOptions(d)
	require.Len(t, opts.Attributes, 1)
	assert.True(t, opts.SegmentVisible)
	require.Len(t, opts.Segments, 1)

	Apply(d, Event{Kind: SelectAttribute, Value: "A1"})
	opts = DeriveOptions(d)
	require.Len(t, opts.Options, 2)
	assert.Equal(t, "1", opts.Options[0].Value)

	// Switching subcategory drops the attribute, so its options vanish too.
	Apply(d, Event{Kind: SelectSubcategory, Value: "S2"})
	opts = DeriveOptions(d)
	assert.Empty(t, opts.Options)
	assert.False(t, opts.SegmentVisible)
	require.Len(t, opts.Attributes, 2, "scoped attribute for the new subcategory appears")
}
