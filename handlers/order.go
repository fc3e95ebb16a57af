package handlers

import (
	"net/http"

	"github.com/eassylife/b2bportal/middleware"
	"github.com/eassylife/b2bportal/services/order"
	"github.com/eassylife/b2bportal/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler drives the order-creation workflow: a draft is opened with
// the catalog/address/slot/zone data behind it, mutated selection by
// selection, and finally submitted.
type OrderHandler struct {
	Service order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{Service: svc}
}

type draftResponse struct {
	Draft       *order.Draft  `json:"draft"`
	Options     order.Options `json:"options"`
	SubmitReady bool          `json:"submitReady"`
}

func newDraftResponse(d *order.Draft) draftResponse {
	return draftResponse{Draft: d, Options: order.DeriveOptions(d), SubmitReady: d.SubmitReady()}
}

// OpenDraftHandler creates a fresh draft, fetching its supporting data.
func (h *OrderHandler) OpenDraftHandler(c *gin.Context) {
	sess := middleware.GetSession(c)
	draft, err := h.Service.OpenDraft(c.Request.Context(), sess.Token)
	if err != nil {
		respondError(c, err, "Failed to open order draft")
		return
	}
	c.JSON(http.StatusOK, newDraftResponse(draft))
}

// ApplyEventHandler applies one selection to the draft and returns the
// re-derived option sets.
func (h *OrderHandler) ApplyEventHandler(c *gin.Context) {
	sess := middleware.GetSession(c)
	draftID := c.Param("draftID")

	var ev order.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid selection event", err.Error())
		return
	}

	draft, err := h.Service.ApplyEvent(c.Request.Context(), sess.Token, draftID, ev)
	if err != nil {
		respondError(c, err, "Failed to apply selection")
		return
	}
	c.JSON(http.StatusOK, newDraftResponse(draft))
}

// SubmitHandler posts the composed order. A server rejection keeps the draft
// so the user may retry; success discards it.
func (h *OrderHandler) SubmitHandler(c *gin.Context) {
	sess := middleware.GetSession(c)
	draftID := c.Param("draftID")

	if err := h.Service.Submit(c.Request.Context(), sess.Token, draftID); err != nil {
		respondError(c, err, "Failed to create order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order created successfully"})
}

// CloseDraftHandler discards the draft.
func (h *OrderHandler) CloseDraftHandler(c *gin.Context) {
	if err := h.Service.CloseDraft(c.Request.Context(), c.Param("draftID")); err != nil {
		respondError(c, err, "Failed to close order draft")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draft discarded"})
}
