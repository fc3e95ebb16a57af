package models

// B2BUser is the profile of the authenticated principal. It is owned by the
// upstream API; the portal only caches it alongside the session.
type B2BUser struct {
	ID                       string  `json:"id"`
	RoleID                   string  `json:"roleId"`
	LocationID               string  `json:"locationId"`
	ManagerUserID            string  `json:"manager_user_id"`
	CompanyName              string  `json:"company_name"`
	ContactPerson            string  `json:"contact_person"`
	Email                    string  `json:"email"`
	Phone                    string  `json:"phone"`
	Address                  string  `json:"address"`
	City                     string  `json:"city"`
	State                    string  `json:"state"`
	Pincode                  string  `json:"pincode"`
	GSTNumber                string  `json:"gst_number"`
	PANNumber                *string `json:"pan_number"`
	CreditDays               int     `json:"credit_days"`
	PaymentTerms             string  `json:"payment_terms"`
	PaymentMethodPreference  string  `json:"payment_method_preference"`
	LatePaymentFeePercentage string  `json:"late_payment_fee_percentage"`
	CreditLimit              string  `json:"credit_limit"`
	Status                   string  `json:"status"` // "active" or "inactive"
	CreatedAt                string  `json:"created_at"`
	UpdatedAt                string  `json:"updated_at"`
}

// LoginRequest carries credentials to the upstream login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
