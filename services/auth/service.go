package auth

import (
	"context"

	"github.com/eassylife/b2bportal/models"
	"github.com/eassylife/b2bportal/session"
	"github.com/eassylife/b2bportal/utils"

	"go.uber.org/zap"
)

// Login performs the two-step exchange: credentials first, then the profile
// fetch, strictly in that order (the profile endpoint needs the token). Any
// failure on either step yields an *AuthError and commits nothing, so a
// previously valid session is left untouched by a failed re-login.
func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	if email == "" || password == "" {
		return nil, &AuthError{Message: "email and password are required"}
	}

	token, err := s.API.Login(ctx, email, password)
	if err != nil {
		return nil, &AuthError{Message: "invalid credentials", Err: err}
	}

	user, err := s.API.CurrentUser(ctx, token)
	if err != nil {
		utils.GetLogger().Warn("Login: profile fetch failed after credential success",
			zap.Error(err))
		return nil, &AuthError{Message: "could not load profile", Err: err}
	}

	return &session.Session{User: user, Token: token, Status: session.Authenticated}, nil
}

// Logout notifies the upstream and swallows any failure. The caller clears
// the persisted session regardless of the outcome.
func (s *DefaultAuthService) Logout(ctx context.Context, sess *session.Session) {
	if sess == nil || sess.Token == "" {
		return
	}
	if err := s.API.Logout(ctx, sess.Token); err != nil {
		utils.GetLogger().Warn("Logout: upstream notify failed", zap.Error(err))
	}
}

// RefreshProfile replaces the cached profile for an authenticated session.
func (s *DefaultAuthService) RefreshProfile(ctx context.Context, sess *session.Session) (*models.B2BUser, error) {
	if !sess.IsAuthenticated() {
		return nil, &ProfileFetchError{Message: "not authenticated"}
	}
	user, err := s.API.CurrentUser(ctx, sess.Token)
	if err != nil {
		return nil, &ProfileFetchError{Message: "upstream fetch failed", Err: err}
	}
	return user, nil
}

var _ Service = (*DefaultAuthService)(nil)
