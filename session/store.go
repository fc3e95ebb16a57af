// File: session/store.go
package session

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/eassylife/b2bportal/config"
	"github.com/eassylife/b2bportal/models"
	"github.com/eassylife/b2bportal/utils"
)

// Cookie names. The session cookie is a signed JWT wrapping the upstream
// identity token; the user cookie carries the serialized profile so a reload
// can rehydrate without a network call.
const (
	TokenCookie = "b2b_session"
	UserCookie  = "b2b_user"
)

func ttl() time.Duration {
	days := config.AppConfig.SessionTTLDays
	if days <= 0 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}

// Write persists a fully populated session to both cookies. Called on every
// transition into Authenticated.
func Write(w http.ResponseWriter, sess *Session) error {
	signed, err := utils.GenerateSessionToken(sess.User.ID, sess.Token, ttl())
	if err != nil {
		return err
	}
	profile, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}
	expires := time.Now().Add(ttl())
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    signed,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   config.IsProduction(),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     UserCookie,
		Value:    encodeCookieValue(profile),
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   config.IsProduction(),
	})
	return nil
}

// Clear removes both cookies. Called on every transition into
// Unauthenticated (logout or authorization loss).
func Clear(w http.ResponseWriter) {
	for _, name := range []string{TokenCookie, UserCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:    name,
			Value:   "",
			Path:    "/",
			Expires: time.Unix(0, 0),
			MaxAge:  -1,
		})
	}
}

// FromRequest rehydrates the session from cookies, purely locally. There is
// no error path: anything missing or invalid yields an unauthenticated
// session. Calling it twice on the same request yields the same result.
func FromRequest(r *http.Request) *Session {
	tokenCookie, err := r.Cookie(TokenCookie)
	if err != nil || tokenCookie.Value == "" {
		return &Session{Status: Unauthenticated}
	}
	userID, upstreamToken, err := utils.ExtractSessionClaims(tokenCookie.Value)
	if err != nil {
		return &Session{Status: Unauthenticated}
	}

	userCookie, err := r.Cookie(UserCookie)
	if err != nil || userCookie.Value == "" {
		return &Session{Status: Unauthenticated}
	}
	var user models.B2BUser
	if err := json.Unmarshal(decodeCookieValue(userCookie.Value), &user); err != nil || user.ID == "" {
		return &Session{Status: Unauthenticated}
	}
	// The profile cookie must belong to the same principal as the token.
	if user.ID != userID {
		return &Session{Status: Unauthenticated}
	}

	return &Session{User: &user, Token: upstreamToken, Status: Authenticated}
}
