// File: upstream/booking.go
package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/eassylife/b2bportal/models"
)

type createOrderEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateOrder submits a composed order payload.
func (c *Client) CreateOrder(ctx context.Context, token string, form models.OrderForm) error {
	var env createOrderEnvelope
	if err := c.do(ctx, token, http.MethodPost, "b2b/booking/create-order", nil, form, &env); err != nil {
		return err
	}
	if !env.Success {
		return &Rejection{Message: env.Message}
	}
	return nil
}

type ordersEnvelope struct {
	Success bool              `json:"success"`
	Data    []models.B2BOrder `json:"data"`
}

// Orders lists the customer's orders.
func (c *Client) Orders(ctx context.Context, token string) ([]models.B2BOrder, error) {
	var env ordersEnvelope
	if err := c.do(ctx, token, http.MethodGet, "b2b/booking/get-order", nil, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &Rejection{}
	}
	return env.Data, nil
}

type orderDetailsEnvelope struct {
	Success bool                     `json:"success"`
	Data    []models.OrderAttachment `json:"data"`
}

// OrderDetails lists the media attachments for an order.
func (c *Client) OrderDetails(ctx context.Context, token, orderID string) ([]models.OrderAttachment, error) {
	query := url.Values{"id": {orderID}}
	var env orderDetailsEnvelope
	if err := c.do(ctx, token, http.MethodGet, "b2b/order/details", query, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &Rejection{}
	}
	return env.Data, nil
}

type invoiceEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    *models.InvoiceData `json:"data"`
}

// DownloadInvoice fetches invoice metadata for an order.
func (c *Client) DownloadInvoice(ctx context.Context, token, orderID string) (*models.InvoiceData, error) {
	query := url.Values{"id": {orderID}}
	var env invoiceEnvelope
	if err := c.do(ctx, token, http.MethodGet, "b2b/order/download-invoice", query, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success || env.Data == nil {
		return nil, &Rejection{Message: env.Message}
	}
	return env.Data, nil
}
