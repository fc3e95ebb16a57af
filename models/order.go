// models/order.go
package models

// OrderForm is the composed order payload posted to the upstream API. The
// draft-by-draft construction lives in services/order; this is the wire shape.
type OrderForm struct {
	CategoryID        string `json:"categoryId"`
	SubcategoryID     string `json:"subcategoryId"`
	Description       string `json:"description"`
	FilterAttributeID string `json:"filterAttributeId"`
	FilterOption      string `json:"filterOption"`
	SegmentOption     string `json:"segmentOption"`
	Address           string `json:"address"`
	AddressID         string `json:"addressId"`
	PreferredDate     string `json:"preferredDate"`
	PreferredTime     string `json:"preferredTime"`
	Priority          string `json:"priority"`
	LocationZone      string `json:"locationZone"`
	CityZone          string `json:"cityZone"`
}

// B2BApproval is an approval record embedded in an order.
type B2BApproval struct {
	ID                    int     `json:"id"`
	OrderID               int     `json:"orderId"`
	StepNumber            int     `json:"step_number"`
	CurrentAssigneeUserID int     `json:"current_assignee_user_id"`
	Status                string  `json:"status"` // pending/approved/rejected
	EscalationLevel       int     `json:"escalation_level"`
	DueAt                 string  `json:"due_at"`
	ActedByUserID         *int    `json:"acted_by_user_id"`
	ActedAt               *string `json:"acted_at"`
	Remarks               *string `json:"remarks"`
	PolicyID              int     `json:"policy_id"`
	LocationID            int     `json:"locationId"`
	CreatedAt             string  `json:"createdAt"`
	UpdatedAt             string  `json:"updatedAt"`
}

// B2BOrder is a placed order as listed by the upstream API.
type B2BOrder struct {
	ID                 string       `json:"id"`
	OrderNumber        string       `json:"order_number"`
	ServiceName        string       `json:"service_name"`
	ServiceDescription string       `json:"service_description"`
	ServiceType        string       `json:"service_type"`
	CustomPrice        string       `json:"custom_price"`
	Quantity           int          `json:"quantity"`
	TotalAmount        string       `json:"total_amount"`
	ServiceDate        string       `json:"service_date"`
	ServiceTime        string       `json:"service_time"`
	ServiceAddress     string       `json:"service_address"`
	Status             string       `json:"status"`         // pending/confirmed/completed/cancelled
	PaymentStatus      string       `json:"payment_status"` // pending/paid/failed
	PaymentMethod      string       `json:"payment_method"`
	InvoiceStatus      string       `json:"invoice_status"` // pending/generated/sent
	B2BStatus          string       `json:"b2b_status"`     // draft/submitted/approved/rejected
	Notes              string       `json:"notes"`
	CreatedAt          int64        `json:"created_at"`
	UpdatedAt          int64        `json:"updated_at"`
	B2BApprovals       *B2BApproval `json:"b2b_approvals"`
}

// OrderAttachment is a media attachment (before/after image) on an order.
type OrderAttachment struct {
	ID             string `json:"id"`
	B2BBookingID   string `json:"b2b_booking_id"`
	ProviderID     string `json:"provider_id"`
	AttachmentType string `json:"attachment_type"` // before_image/after_image
	FileName       string `json:"file_name"`
	FileURL        string `json:"file_url"`
	FileKey        string `json:"file_key"`
	FileSize       int64  `json:"file_size"`
	MimeType       string `json:"mime_type"`
	UploadedAt     string `json:"uploaded_at"`
	ExpiresAt      string `json:"expires_at"`
	IsArchived     bool   `json:"is_archived"`
}

// InvoiceData is invoice metadata for a completed order.
type InvoiceData struct {
	ID              string `json:"id"`
	B2BBookingID    int    `json:"b2b_booking_id"`
	InvoiceFilePath string `json:"invoice_file_path"`
	InvoiceNumber   string `json:"invoice_number"`
	PaymentStatus   string `json:"payment_status"`
	PaymentTerms    string `json:"payment_terms"`
}
