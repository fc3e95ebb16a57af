package auth

import (
	"context"

	"github.com/eassylife/b2bportal/models"
	"github.com/eassylife/b2bportal/session"
	"github.com/eassylife/b2bportal/upstream"
)

// Service is the auth lifecycle controller. It owns the login/logout/refresh
// orchestration against the upstream API; cookie persistence itself lives in
// the session package and is invoked by the transport layer on every
// state-entering transition.
type Service interface {
	// Login exchanges credentials and then resolves the full profile. It is
	// all-or-nothing: either a fully populated session is returned, or an
	// *AuthError and no state is committed.
	Login(ctx context.Context, email, password string) (*session.Session, error)

	// Logout best-effort notifies the upstream. It never fails from the
	// caller's perspective; the caller clears cookies unconditionally.
	Logout(ctx context.Context, sess *session.Session)

	// RefreshProfile refetches the profile for an authenticated session. The
	// returned user replaces the cached profile; failure returns a
	// *ProfileFetchError and leaves authentication status untouched.
	RefreshProfile(ctx context.Context, sess *session.Session) (*models.B2BUser, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	API *upstream.Client
}
