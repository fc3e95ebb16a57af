// File: upstream/workflow.go
package upstream

import (
	"context"
	"net/http"

	"github.com/eassylife/b2bportal/models"
)

type approvalFlowEnvelope struct {
	Success bool                      `json:"success"`
	Data    []models.ApprovalFlowItem `json:"data"`
}

// ApprovalFlow lists pending approval steps assigned to the current user.
func (c *Client) ApprovalFlow(ctx context.Context, token string) ([]models.ApprovalFlowItem, error) {
	var env approvalFlowEnvelope
	if err := c.do(ctx, token, http.MethodGet, "b2b/start-approval-flow", nil, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &Rejection{}
	}
	return env.Data, nil
}

type actionEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TakeApprovalAction submits an approve/reject decision on an approval step.
func (c *Client) TakeApprovalAction(ctx context.Context, token, approvalID string, action models.WorkflowAction) error {
	var env actionEnvelope
	if err := c.do(ctx, token, http.MethodPost, "b2b/take-approval-action/"+approvalID, nil, action, &env); err != nil {
		return err
	}
	if !env.Success {
		return &Rejection{Message: env.Message}
	}
	return nil
}

type quotationsEnvelope struct {
	Success bool                    `json:"success"`
	Data    []models.QuotationGroup `json:"data"`
}

// Quotations lists the customer's quotations grouped by booking.
func (c *Client) Quotations(ctx context.Context, token string) ([]models.QuotationGroup, error) {
	var env quotationsEnvelope
	if err := c.do(ctx, token, http.MethodGet, "b2b/quotations", nil, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &Rejection{}
	}
	return env.Data, nil
}

// QuotationAction submits an approve/reject decision on a quotation.
func (c *Client) QuotationAction(ctx context.Context, token, quotationID string, action models.WorkflowAction) error {
	var env actionEnvelope
	if err := c.do(ctx, token, http.MethodPost, "b2b/quotations/action/"+quotationID, nil, action, &env); err != nil {
		return err
	}
	if !env.Success {
		return &Rejection{Message: env.Message}
	}
	return nil
}
