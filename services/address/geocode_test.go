package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func comp(long string, types ...string) PlaceComponent {
	return PlaceComponent{LongName: long, Types: types}
}

func TestFromPlaceComponents_FullResult(t *testing.T) {
	got := FromPlaceComponents([]PlaceComponent{
		comp("12", "street_number"),
		comp("High Street", "route"),
		comp("Andheri East", "sublocality_level_1", "sublocality"),
		comp("Marol", "neighborhood"),
		comp("Metro Station", "point_of_interest"),
		comp("Mumbai", "locality"),
		comp("Maharashtra", "administrative_area_level_1"),
		comp("400001", "postal_code"),
	})

	assert.Equal(t, "12 High Street", got.AddressLine1)
	assert.Equal(t, "Andheri East, Marol", got.AddressLine2)
	assert.Equal(t, "Metro Station", got.Landmark)
	assert.Equal(t, "Mumbai", got.City)
	assert.Equal(t, "Maharashtra", got.State)
	assert.Equal(t, "400001", got.Pincode)
}

func TestFromPlaceComponents_RouteOnly(t *testing.T) {
	got := FromPlaceComponents([]PlaceComponent{comp("High Street", "route")})
	assert.Equal(t, "High Street", got.AddressLine1)
	assert.Empty(t, got.AddressLine2)
}

func TestFromPlaceComponents_DedupesLine2(t *testing.T) {
	// A component tagged with two line-2 types must not appear twice.
	got := FromPlaceComponents([]PlaceComponent{
		comp("Andheri East", "sublocality", "sublocality_level_1"),
	})
	assert.Equal(t, "Andheri East", got.AddressLine2)
}

func TestFromPlaceComponents_FirstLandmarkWins(t *testing.T) {
	got := FromPlaceComponents([]PlaceComponent{
		comp("Metro Station", "point_of_interest"),
		comp("City Mall", "point_of_interest"),
	})
	assert.Equal(t, "Metro Station", got.Landmark)
}

func TestFromPlaceComponents_Empty(t *testing.T) {
	got := FromPlaceComponents(nil)
	assert.Equal(t, ExtractedAddress{}, got)
}
