package handlers

import (
	"net/http"

	"github.com/eassylife/b2bportal/middleware"
	"github.com/eassylife/b2bportal/upstream"

	"github.com/gin-gonic/gin"
)

// OrdersHandler serves the placed-orders views: listing, the media gallery
// of an order and its invoice metadata. Listing is a plain fetch rendered
// as-is; no status derivation happens client-side.
type OrdersHandler struct {
	API *upstream.Client
}

func NewOrdersHandler(api *upstream.Client) *OrdersHandler {
	return &OrdersHandler{API: api}
}

func (h *OrdersHandler) ListHandler(c *gin.Context) {
	sess := middleware.GetSession(c)
	orders, err := h.API.Orders(c.Request.Context(), sess.Token)
	if err != nil {
		respondError(c, err, "Failed to load orders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrdersHandler) AttachmentsHandler(c *gin.Context) {
	sess := middleware.GetSession(c)
	attachments, err := h.API.OrderDetails(c.Request.Context(), sess.Token, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load order attachments")
		return
	}
	c.JSON(http.StatusOK, gin.H{"attachments": attachments})
}

func (h *OrdersHandler) InvoiceHandler(c *gin.Context) {
	sess := middleware.GetSession(c)
	invoice, err := h.API.DownloadInvoice(c.Request.Context(), sess.Token, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load invoice")
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}
