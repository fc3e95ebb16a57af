// File: services/workflow/service.go
package workflow

import (
	"context"
	"strings"

	"github.com/eassylife/b2bportal/models"
	"github.com/eassylife/b2bportal/upstream"
)

// Service lists pending workflow items and submits approve/reject decisions.
// The portal never mutates an item's status locally: each successful action
// is followed by a full refetch, so the authoritative status always comes
// from the server-side approval engine.
type Service interface {
	ListApprovals(ctx context.Context, token string) ([]models.ApprovalFlowItem, error)
	ActOnApproval(ctx context.Context, token, approvalID, action, remarks string) ([]models.ApprovalFlowItem, error)
	ListQuotations(ctx context.Context, token string) ([]models.QuotationGroup, error)
	ActOnQuotation(ctx context.Context, token, quotationID, action, remarks string) ([]models.QuotationGroup, error)
}

// DefaultWorkflowService is the production implementation.
type DefaultWorkflowService struct {
	API             *upstream.Client
	ApprovalPolicy  RemarkPolicy
	QuotationPolicy RemarkPolicy
}

// NewDefaultWorkflowService applies the per-workflow remark policies observed
// in the portal: approvals demand remarks on both decisions, quotations only
// on reject.
func NewDefaultWorkflowService(api *upstream.Client) *DefaultWorkflowService {
	return &DefaultWorkflowService{
		API:             api,
		ApprovalPolicy:  RemarksAlwaysRequired,
		QuotationPolicy: RemarksRequiredOnReject,
	}
}

func (s *DefaultWorkflowService) ListApprovals(ctx context.Context, token string) ([]models.ApprovalFlowItem, error) {
	return s.API.ApprovalFlow(ctx, token)
}

// ActOnApproval validates locally, submits the decision and returns the
// refetched list.
func (s *DefaultWorkflowService) ActOnApproval(ctx context.Context, token, approvalID, action, remarks string) ([]models.ApprovalFlowItem, error) {
	if err := s.ApprovalPolicy.Validate(action, remarks); err != nil {
		return nil, err
	}
	decision := models.WorkflowAction{Action: action, Remarks: strings.TrimSpace(remarks)}
	if err := s.API.TakeApprovalAction(ctx, token, approvalID, decision); err != nil {
		return nil, err
	}
	return s.API.ApprovalFlow(ctx, token)
}

func (s *DefaultWorkflowService) ListQuotations(ctx context.Context, token string) ([]models.QuotationGroup, error) {
	return s.API.Quotations(ctx, token)
}

// ActOnQuotation validates locally, submits the decision and returns the
// refetched list.
func (s *DefaultWorkflowService) ActOnQuotation(ctx context.Context, token, quotationID, action, remarks string) ([]models.QuotationGroup, error) {
	if err := s.QuotationPolicy.Validate(action, remarks); err != nil {
		return nil, err
	}
	decision := models.WorkflowAction{Action: action, Remarks: strings.TrimSpace(remarks)}
	if err := s.API.QuotationAction(ctx, token, quotationID, decision); err != nil {
		return nil, err
	}
	return s.API.Quotations(ctx, token)
}

var _ Service = (*DefaultWorkflowService)(nil)
