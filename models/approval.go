package models

// B2BBooking is the booking summary attached to a pending approval.
type B2BBooking struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	ServiceName string `json:"service_name"`
	LocationID  *int   `json:"locationId"`
}

// ApprovalFlowItem is a pending step of the server-side approval engine. The
// portal never transitions its status directly; it submits an action and
// refetches the list.
type ApprovalFlowItem struct {
	ID                    int        `json:"id"`
	OrderID               int        `json:"orderId"`
	StepNumber            int        `json:"step_number"`
	CurrentAssigneeUserID int        `json:"current_assignee_user_id"`
	Status                string     `json:"status"` // pending/approved/rejected
	EscalationLevel       int        `json:"escalation_level"`
	DueAt                 string     `json:"due_at"`
	ActedByUserID         *int       `json:"acted_by_user_id"`
	ActedAt               *string    `json:"acted_at"`
	Remarks               *string    `json:"remarks"`
	PolicyID              int        `json:"policy_id"`
	LocationID            int        `json:"locationId"`
	CreatedAt             string     `json:"createdAt"`
	UpdatedAt             string     `json:"updatedAt"`
	B2BBooking            B2BBooking `json:"B2BBooking"`
}

// WorkflowAction is an approve/reject decision with remarks.
type WorkflowAction struct {
	Action  string `json:"action"` // "approve" or "reject"
	Remarks string `json:"remarks"`
}
