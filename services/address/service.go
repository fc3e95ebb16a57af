// File: services/address/service.go
package address

import (
	"context"

	"github.com/eassylife/b2bportal/models"
	"github.com/eassylife/b2bportal/upstream"
	"github.com/eassylife/b2bportal/utils"
)

// Service owns the address book: listing and creating stored service
// locations.
type Service interface {
	List(ctx context.Context, token string) ([]models.Address, error)
	Add(ctx context.Context, token string, req models.AddAddressRequest) (*models.Address, error)
}

// DefaultAddressService is the production implementation.
type DefaultAddressService struct {
	API *upstream.Client
}

func (s *DefaultAddressService) List(ctx context.Context, token string) ([]models.Address, error) {
	return s.API.Addresses(ctx, token)
}

// Add validates required fields locally before any network call.
func (s *DefaultAddressService) Add(ctx context.Context, token string, req models.AddAddressRequest) (*models.Address, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	return s.API.AddAddress(ctx, token, req)
}

func validate(req models.AddAddressRequest) error {
	required := []struct {
		field, value, message string
	}{
		{"storeName", req.StoreName, "store name is required"},
		{"contactPerson", req.ContactPerson, "contact person is required"},
		{"contactPhone", req.ContactPhone, "contact phone is required"},
		{"addressLine1", req.AddressLine1, "address line 1 is required"},
		{"city", req.City, "city is required"},
		{"state", req.State, "state is required"},
		{"pincode", req.Pincode, "pincode is required"},
	}
	for _, r := range required {
		if r.value == "" {
			return utils.NewValidationError(r.field, r.message)
		}
	}
	return nil
}

var _ Service = (*DefaultAddressService)(nil)
