package team

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/eassylife/b2bportal/upstream"
	"github.com/eassylife/b2bportal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func newTeamService(t *testing.T, srv *httptest.Server) *DefaultTeamService {
	t.Helper()
	api, err := upstream.New(srv.URL+"/", 2*time.Second, zap.NewNop())
	require.NoError(t, err)
	return &DefaultTeamService{API: api}
}

func TestSetEmployeeStatus(t *testing.T) {
	var calls int64
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/b2b/employees/E1/status", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status":true}`))
	}))
	defer srv.Close()
	svc := newTeamService(t, srv)

	// Only the two known states are accepted, checked before any call.
	for _, status := range []string{"", "suspended", "ACTIVE"} {
		err := svc.SetEmployeeStatus(context.Background(), "42", "E1", status)
		var verr *utils.ValidationError
		require.ErrorAs(t, err, &verr)
	}
	assert.EqualValues(t, 0, atomic.LoadInt64(&calls))

	require.NoError(t, svc.SetEmployeeStatus(context.Background(), "42", "E1", "inactive"))
	assert.EqualValues(t, 1, atomic.LoadInt64(&calls))
	assert.Equal(t, map[string]string{"status": "inactive"}, gotBody)
}

func TestAssignRole(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/b2b/roles/user-role", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"status":true}`))
	}))
	defer srv.Close()
	svc := newTeamService(t, srv)

	var verr *utils.ValidationError
	require.ErrorAs(t, svc.AssignRole(context.Background(), "42", "", "R1"), &verr)
	require.ErrorAs(t, svc.AssignRole(context.Background(), "42", "U1", ""), &verr)

	require.NoError(t, svc.AssignRole(context.Background(), "42", "U1", "R1"))
	assert.Equal(t, map[string]string{"userId": "U1", "roleId": "R1"}, gotBody)
}

func TestEmployees_UpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":false,"message":"no team configured"}`))
	}))
	defer srv.Close()

	_, err := newTeamService(t, srv).Employees(context.Background(), "42")
	var rej *upstream.Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, "no team configured", rej.Message)
}
