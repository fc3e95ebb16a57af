package models

// B2BQuotationItem is a priced proposal tied to a booking.
type B2BQuotationItem struct {
	ID              string `json:"id"`
	Status          string `json:"status"` // draft/sent/approved/rejected
	QuotationNumber string `json:"quotation_number"`
	TotalAmount     string `json:"total_amount"`
	GSTAmount       string `json:"gst_amount"`
	FinalAmount     string `json:"final_amount"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// QuotationGroup groups a booking's quotations as returned by the listing.
type QuotationGroup struct {
	ID            string             `json:"id"`
	B2BQuotations []B2BQuotationItem `json:"B2BQuotation"`
}
