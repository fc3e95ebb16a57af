package models

// Provider is the basic profile of a service provider.
type Provider struct {
	ID          string  `json:"id"`
	Image       string  `json:"image"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	CompanyName *string `json:"company_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Country     *string `json:"country"`
	State       *string `json:"state"`
	City        *string `json:"city"`
	PostalCode  string  `json:"postal_code"`
}

// ProviderCardAttribute ties a rate card to one attribute/option pair.
type ProviderCardAttribute struct {
	ID                string `json:"id"`
	RatecardID        string `json:"ratecard_id"`
	FilterAttributeID string `json:"filter_attribute_id"`
	FilterOptionID    string `json:"filter_option_id"`
}

// ProviderCard is one provider's priced offering for a service selection.
type ProviderCard struct {
	ID            string                  `json:"id"`
	CategoryID    string                  `json:"category_id"`
	SubcategoryID string                  `json:"subcategory_id"`
	SegmentID     *string                 `json:"segment_id"`
	ProviderID    string                  `json:"provider_id"`
	Name          string                  `json:"name"`
	Price         string                  `json:"price"`
	StrikePrice   string                  `json:"strike_price"`
	Recommended   bool                    `json:"recommended"`
	BestDeal      bool                    `json:"best_deal"`
	Active        int                     `json:"active"`
	ServiceType   string                  `json:"service_type"` // both/online/offline
	Provider      Provider                `json:"provider"`
	Attributes    []ProviderCardAttribute `json:"attributes"`
}

// AttributeSelection is one chosen attribute/option pair in a provider search.
type AttributeSelection struct {
	AttributeID string `json:"attribute_id"`
	OptionID    string `json:"option_id"`
}

// ProviderSearch is the criteria posted to the provider-search endpoint.
type ProviderSearch struct {
	CategoryID    string               `json:"category_id"`
	SubcategoryID string               `json:"subcategory_id"`
	Attributes    []AttributeSelection `json:"attributes"`
	SegmentID     string               `json:"segment_id"`
}
