package upstream

import (
	"context"
	"net/http"

	"github.com/eassylife/b2bportal/models"
)

type providerCardsEnvelope struct {
	Status      bool                  `json:"status"`
	Data        []models.ProviderCard `json:"data"`
	TotalItems  int                   `json:"totalItems"`
	TotalPages  int                   `json:"totalPages"`
	CurrentPage int                   `json:"currentPage"`
}

// ServiceProviders searches provider rate cards matching a service selection.
func (c *Client) ServiceProviders(ctx context.Context, token string, search models.ProviderSearch) ([]models.ProviderCard, error) {
	var env providerCardsEnvelope
	if err := c.do(ctx, token, http.MethodPost, "b2b/provider/service-providers", nil, search, &env); err != nil {
		return nil, err
	}
	if !env.Status {
		return nil, &Rejection{}
	}
	return env.Data, nil
}
