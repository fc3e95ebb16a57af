// models/address.go
package models

// Address is a stored service location belonging to a customer.
type Address struct {
	ID            string  `json:"id"`
	B2BCustomerID string  `json:"b2b_customer_id"`
	AddressType   string  `json:"address_type"` // store/branch/warehouse/office/service_location
	StoreName     string  `json:"store_name"`
	StoreCode     string  `json:"store_code"`
	ContactPerson string  `json:"contact_person"`
	ContactPhone  string  `json:"contact_phone"`
	AddressLine1  string  `json:"address_line_1"`
	AddressLine2  *string `json:"address_line_2"`
	Landmark      *string `json:"landmark"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Pincode       string  `json:"pincode"`
	Latitude      *string `json:"latitude"`
	Longitude     *string `json:"longitude"`
	IsPrimary     bool    `json:"is_primary"`
	IsActive      bool    `json:"is_active"`
	CreatedAt     int64   `json:"created_at"`
	UpdatedAt     int64   `json:"updated_at"`
}

// AddAddressRequest is the payload for creating a new address.
type AddAddressRequest struct {
	AddressType   string `json:"addressType"`
	StoreName     string `json:"storeName"`
	StoreCode     string `json:"storeCode"`
	ContactPerson string `json:"contactPerson"`
	ContactPhone  string `json:"contactPhone"`
	AddressLine1  string `json:"addressLine1"`
	AddressLine2  string `json:"addressLine2,omitempty"`
	Landmark      string `json:"landmark,omitempty"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	Latitude      string `json:"latitude,omitempty"`
	Longitude     string `json:"longitude,omitempty"`
	IsPrimary     bool   `json:"isPrimary,omitempty"`
	IsActive      bool   `json:"isActive,omitempty"`
	B2BCustomerID string `json:"b2b_customer_id"`
}
