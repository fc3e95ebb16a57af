// File: upstream/catalog.go
package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/eassylife/b2bportal/models"
)

type categoriesEnvelope struct {
	Success bool                     `json:"success"`
	Data    []models.ServiceCategory `json:"data"`
}

// Categories fetches the full catalog tree as one document.
func (c *Client) Categories(ctx context.Context, token string) ([]models.ServiceCategory, error) {
	var env categoriesEnvelope
	if err := c.do(ctx, token, http.MethodGet, "b2b/categories", nil, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &Rejection{}
	}
	return env.Data, nil
}

type addressesEnvelope struct {
	Status  bool             `json:"status"`
	Message string           `json:"message"`
	Data    []models.Address `json:"data"`
}

// Addresses lists the customer's stored service locations.
func (c *Client) Addresses(ctx context.Context, token string) ([]models.Address, error) {
	var env addressesEnvelope
	if err := c.do(ctx, token, http.MethodGet, "b2b/get-address", nil, nil, &env); err != nil {
		return nil, err
	}
	if !env.Status {
		return nil, &Rejection{Message: env.Message}
	}
	return env.Data, nil
}

type addAddressEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    *models.Address `json:"data"`
}

// AddAddress creates a new stored address.
func (c *Client) AddAddress(ctx context.Context, token string, req models.AddAddressRequest) (*models.Address, error) {
	var env addAddressEnvelope
	if err := c.do(ctx, token, http.MethodPost, "b2b/add-address", nil, req, &env); err != nil {
		return nil, err
	}
	if !env.Status {
		return nil, &Rejection{Message: env.Message}
	}
	return env.Data, nil
}

type slotTimingEnvelope struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Data    *models.SlotTimingData `json:"data"`
}

// SlotTiming fetches the current availability window.
func (c *Client) SlotTiming(ctx context.Context, token string) (*models.SlotTimingData, error) {
	var env slotTimingEnvelope
	if err := c.do(ctx, token, http.MethodGet, "b2b/provider/slots", nil, nil, &env); err != nil {
		return nil, err
	}
	if !env.Status || env.Data == nil {
		return nil, &Rejection{Message: env.Message}
	}
	return env.Data, nil
}

type locationsEnvelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    []models.LocationZone `json:"data"`
}

// Locations fetches the zone tree scoped to a parent zone. An empty parentID
// returns root location zones.
func (c *Client) Locations(ctx context.Context, token, parentID string) ([]models.LocationZone, error) {
	query := url.Values{"id": {parentID}}
	var env locationsEnvelope
	if err := c.do(ctx, token, http.MethodGet, "b2b/booking/get-location", query, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &Rejection{Message: env.Message}
	}
	return env.Data, nil
}
