package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eassylife/b2bportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := New(srv.URL+"/", 2*time.Second, zap.NewNop())
	require.NoError(t, err)
	return c
}

func TestLogin_Success(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"data":{"user":{"id":"42","contact_person":"Jane Doe"}}}`))
	}))
	defer srv.Close()

	token, err := newTestClient(t, srv).Login(context.Background(), "jane@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "42", token, "identity token is the user's ID")
	assert.Equal(t, "/b2b/login", gotPath)
	assert.Empty(t, gotAuth, "login itself carries no bearer token")
}

func TestLogin_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":false,"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Login(context.Background(), "jane@example.com", "bad")
	var rej *Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, "Invalid credentials", rej.Message)
}

func TestCurrentUser_BearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer 42", r.Header.Get("Authorization"))
		assert.Equal(t, "/b2b/get-current-token", r.URL.Path)
		w.Write([]byte(`{"status":true,"data":{"id":"42","company_name":"Acme Supplies"}}`))
	}))
	defer srv.Close()

	user, err := newTestClient(t, srv).CurrentUser(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", user.ID)
	assert.Equal(t, "Acme Supplies", user.CompanyName)
}

func TestDo_UnauthorizedSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).CurrentUser(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDo_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"database unavailable"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).CurrentUser(context.Background(), "42")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "database unavailable", apiErr.Message)
}

func TestDo_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	_, err := newTestClient(t, srv).CurrentUser(context.Background(), "42")
	var nerr *NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.False(t, nerr.Timeout)
}

func TestDo_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c, err := New(srv.URL+"/", 50*time.Millisecond, zap.NewNop())
	require.NoError(t, err)

	_, err = c.CurrentUser(context.Background(), "42")
	var nerr *NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.True(t, nerr.Timeout)
}

func TestDo_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := newTestClient(t, srv).CurrentUser(ctx, "42")
		done <- err
	}()
	cancel()

	err := <-done
	require.Error(t, err)
	var nerr *NetworkError
	assert.ErrorAs(t, err, &nerr)
}

func TestTakeApprovalAction_SuccessFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/b2b/take-approval-action/AP1", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"success":false,"message":"step already decided"}`))
	}))
	defer srv.Close()

	action := models.WorkflowAction{Action: "approve", Remarks: "looks fine"}
	err := newTestClient(t, srv).TakeApprovalAction(context.Background(), "42", "AP1", action)
	var rej *Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, "step already decided", rej.Message)
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestDo_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<!doctype html><html>error</html>`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).CurrentUser(context.Background(), "42")
	var rej *Rejection
	assert.ErrorAs(t, err, &rej)
}
