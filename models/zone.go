package models

// LocationZone is a node of the location/city-zone tree. Fetching with an
// empty parent ID returns root zones; fetching with a zone ID returns its
// child city zones.
type LocationZone struct {
	ID               string `json:"id"`
	ParentLocationID string `json:"parent_location_id"`
	Name             string `json:"name"`
	Code             string `json:"code"`
}
