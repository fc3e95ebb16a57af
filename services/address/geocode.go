package address

import "strings"

// PlaceComponent is one address component as returned by a places/geocoding
// provider.
type PlaceComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// ExtractedAddress is the address fields recovered from place components.
type ExtractedAddress struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	Landmark     string `json:"landmark"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

// FromPlaceComponents maps geocoder address components onto address-form
// fields: street number + route form line 1, sublocality/neighborhood line 2,
// a point of interest the landmark, locality the city, the level-1
// administrative area the state, and postal code the pincode.
func FromPlaceComponents(components []PlaceComponent) ExtractedAddress {
	var out ExtractedAddress
	var streetNumber, route string
	var line2 []string

	for _, comp := range components {
		for _, t := range comp.Types {
			switch t {
			case "street_number":
				streetNumber = comp.LongName
			case "route":
				route = comp.LongName
			case "sublocality", "sublocality_level_1", "neighborhood":
				line2 = append(line2, comp.LongName)
			case "point_of_interest":
				if out.Landmark == "" {
					out.Landmark = comp.LongName
				}
			case "locality":
				out.City = comp.LongName
			case "administrative_area_level_1":
				out.State = comp.LongName
			case "postal_code":
				out.Pincode = comp.LongName
			}
		}
	}

	switch {
	case streetNumber != "" && route != "":
		out.AddressLine1 = streetNumber + " " + route
	case route != "":
		out.AddressLine1 = route
	case streetNumber != "":
		out.AddressLine1 = streetNumber
	}
	out.AddressLine2 = strings.Join(dedupe(line2), ", ")
	return out
}

func dedupe(values []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
