package workflow

import (
	"context"
	"encoding/json"
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

// countingUpstream records every call by path and captures the last decision
// payload.
type countingUpstream struct {
	calls      map[string]*int64
	lastAction models.WorkflowAction
}

func newCountingUpstream() *countingUpstream {
	return &countingUpstream{calls: map[string]*int64{
		"approvals":       new(int64),
		"approvalAction":  new(int64),
		"quotations":      new(int64),
		"quotationAction": new(int64),
	}}
}

func (f *countingUpstream) count(name string) int64 {
	return atomic.LoadInt64(f.calls[name])
}

func (f *countingUpstream) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/b2b/start-approval-flow":
			atomic.AddInt64(f.calls["approvals"], 1)
			w.Write([]byte(`{"success":true,"data":[{"id":7,"status":"pending"}]}`))
		case r.URL.Path == "/b2b/take-approval-action/AP1":
			atomic.AddInt64(f.calls["approvalAction"], 1)
			json.NewDecoder(r.Body).Decode(&f.lastAction)
			w.Write([]byte(`{"success":true}`))
		case r.URL.Path == "/b2b/quotations":
			atomic.AddInt64(f.calls["quotations"], 1)
			w.Write([]byte(`{"success":true,"data":[{"id":"B1"}]}`))
		case r.URL.Path == "/b2b/quotations/action/Q1":
			atomic.AddInt64(f.calls["quotationAction"], 1)
			json.NewDecoder(r.Body).Decode(&f.lastAction)
			w.Write([]byte(`{"success":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newWorkflowService(t *testing.T, srv *httptest.Server) *DefaultWorkflowService {
	t.Helper()
	api, err := upstream.New(srv.URL+"/", 2*time.Second, zap.NewNop())
	require.NoError(t, err)
	return NewDefaultWorkflowService(api)
}

func TestActOnApproval_SubmitsAndRefetches(t *testing.T) {
	fake := newCountingUpstream()
	srv := fake.server()
	defer srv.Close()

	items, err := newWorkflowService(t, srv).ActOnApproval(
		context.Background(), "42", "AP1", "approve", "  budget confirmed  ")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].ID)

	assert.EqualValues(t, 1, fake.count("approvalAction"))
	assert.EqualValues(t, 1, fake.count("approvals"), "status comes from a refetch, not a local mutation")
	assert.Equal(t, "approve", fake.lastAction.Action)
	assert.Equal(t, "budget confirmed", fake.lastAction.Remarks, "remarks are trimmed before submission")
}

// An invalid decision must be stopped locally: zero upstream calls.
func TestActOnApproval_MissingRemarksNeverReachesUpstream(t *testing.T) {
	fake := newCountingUpstream()
	srv := fake.server()
	defer srv.Close()

	_, err := newWorkflowService(t, srv).ActOnApproval(context.Background(), "42", "AP1", "approve", "")
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.EqualValues(t, 0, fake.count("approvalAction"))
	assert.EqualValues(t, 0, fake.count("approvals"))
}

func TestActOnQuotation_RejectRequiresRemarks(t *testing.T) {
	fake := newCountingUpstream()
	srv := fake.server()
	defer srv.Close()
	svc := newWorkflowService(t, srv)

	_, err := svc.ActOnQuotation(context.Background(), "42", "Q1", "reject", "   ")
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.EqualValues(t, 0, fake.count("quotationAction"))

	// Approve without remarks is fine for quotations.
	groups, err := svc.ActOnQuotation(context.Background(), "42", "Q1", "approve", "")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.EqualValues(t, 1, fake.count("quotationAction"))
	assert.EqualValues(t, 1, fake.count("quotations"))
}

func TestActOnApproval_UpstreamRejectionSkipsRefetch(t *testing.T) {
	var refetches int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/b2b/take-approval-action/AP1":
			w.Write([]byte(`{"success":false,"message":"step already decided"}`))
		case "/b2b/start-approval-flow":
			atomic.AddInt64(&refetches, 1)
			w.Write([]byte(`{"success":true,"data":[]}`))
		}
	}))
	defer srv.Close()

	_, err := newWorkflowService(t, srv).ActOnApproval(context.Background(), "42", "AP1", "reject", "no")
	var rej *upstream.Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, "step already decided", rej.Message)
	assert.EqualValues(t, 0, atomic.LoadInt64(&refetches))
}
