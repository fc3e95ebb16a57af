package handlers

import (
	"net/http"

	"github.com/eassylife/b2bportal/middleware"
	"github.com/eassylife/b2bportal/services/workflow"
	"github.com/eassylife/b2bportal/utils"

	"github.com/gin-gonic/gin"
)

// WorkflowHandler serves the approval and quotation workflows: list pending
// items, submit an approve/reject decision, respond with the refetched list.
type WorkflowHandler struct {
	Service workflow.Service
}

func NewWorkflowHandler(svc workflow.Service) *WorkflowHandler {
	return &WorkflowHandler{Service: svc}
}

type actionRequest struct {
	Action  string `json:"action" binding:"required"`
	Remarks string `json:"remarks"`
}

func (h *WorkflowHandler) ApprovalsHandler(c *gin.Context) {
	sess := middleware.GetSession(c)
	items, err := h.Service.ListApprovals(c.Request.Context(), sess.Token)
	if err != nil {
		respondError(c, err, "Failed to load approvals")
		return
	}
	c.JSON(http.StatusOK, gin.H{"approvals": items})
}

func (h *WorkflowHandler) ApprovalActionHandler(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid action", err.Error())
		return
	}

	items, err := h.Service.ActOnApproval(c.Request.Context(), sess.Token, c.Param("id"), req.Action, req.Remarks)
	if err != nil {
		respondError(c, err, "Failed to submit approval action")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Action recorded", "approvals": items})
}

func (h *WorkflowHandler) QuotationsHandler(c *gin.Context) {
	sess := middleware.GetSession(c)
	groups, err := h.Service.ListQuotations(c.Request.Context(), sess.Token)
	if err != nil {
		respondError(c, err, "Failed to load quotations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotations": groups})
}

func (h *WorkflowHandler) QuotationActionHandler(c *gin.Context) {
	sess := middleware.GetSession(c)

	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid action", err.Error())
		return
	}

	groups, err := h.Service.ActOnQuotation(c.Request.Context(), sess.Token, c.Param("id"), req.Action, req.Remarks)
	if err != nil {
		respondError(c, err, "Failed to submit quotation action")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Action recorded", "quotations": groups})
}
