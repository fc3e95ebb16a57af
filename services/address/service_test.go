package address

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/eassylife/b2bportal/models"
	"github.com/eassylife/b2bportal/upstream"
	"github.com/eassylife/b2bportal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func validAddRequest() models.AddAddressRequest {
	return models.AddAddressRequest{
		AddressType:   "store",
		StoreName:     "Main Store",
		ContactPerson: "Jane Doe",
		ContactPhone:  "9999999999",
		AddressLine1:  "12 High St",
		City:          "Mumbai",
		State:         "Maharashtra",
		Pincode:       "400001",
		B2BCustomerID: "42",
	}
}

func TestAdd_RequiredFields(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.Write([]byte(`{"status":true,"data":{"id":"A1","store_name":"Main Store"}}`))
	}))
	defer srv.Close()

	api, err := upstream.New(srv.URL+"/", 2*time.Second, zap.NewNop())
	require.NoError(t, err)
	svc := &DefaultAddressService{API: api}

	blank := func(mutate func(*models.AddAddressRequest)) models.AddAddressRequest {
		req := validAddRequest()
		mutate(&req)
		return req
	}
	invalid := map[string]models.AddAddressRequest{
		"storeName":     blank(func(r *models.AddAddressRequest) { r.StoreName = "" }),
		"contactPerson": blank(func(r *models.AddAddressRequest) { r.ContactPerson = "" }),
		"contactPhone":  blank(func(r *models.AddAddressRequest) { r.ContactPhone = "" }),
		"addressLine1":  blank(func(r *models.AddAddressRequest) { r.AddressLine1 = "" }),
		"city":          blank(func(r *models.AddAddressRequest) { r.City = "" }),
		"state":         blank(func(r *models.AddAddressRequest) { r.State = "" }),
		"pincode":       blank(func(r *models.AddAddressRequest) { r.Pincode = "" }),
	}
	for field, req := range invalid {
		_, err := svc.Add(context.Background(), "42", req)
		var verr *utils.ValidationError
		require.ErrorAs(t, err, &verr, field)
		assert.Equal(t, field, verr.Field)
	}
	assert.EqualValues(t, 0, atomic.LoadInt64(&calls), "invalid requests never reach the upstream")

	addr, err := svc.Add(context.Background(), "42", validAddRequest())
	require.NoError(t, err)
	assert.Equal(t, "A1", addr.ID)
	assert.EqualValues(t, 1, atomic.LoadInt64(&calls))
}
