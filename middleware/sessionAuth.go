package middleware

import (
	"errors"
	"net/http"

	"github.com/eassylife/b2bportal/session"
	"github.com/eassylife/b2bportal/upstream"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SessionAuthMiddleware is the route guard: it rehydrates the session from
// cookies on every request and refuses unauthenticated ones with a login
// redirect hint. Because the check runs per request, a session cleared in
// the background is observed on the very next request.
func SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.FromRequest(c.Request)
		if !sess.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "Authentication required",
				"redirect": "/login",
			})
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// GetSession returns the session hydrated by SessionAuthMiddleware.
func GetSession(c *gin.Context) *session.Session {
	if v, exists := c.Get(sessionKey); exists {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return &session.Session{Status: session.Unauthenticated}
}

// HandleUpstreamAuthLoss clears the persisted session and answers 401 when
// an upstream call reported authorization loss. It returns true when the
// error was consumed. The clearing happens exactly once per failing
// response, here and nowhere else.
func HandleUpstreamAuthLoss(c *gin.Context, err error) bool {
	if !errors.Is(err, upstream.ErrUnauthorized) {
		return false
	}
	session.Clear(c.Writer)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    "Session expired",
		"redirect": "/login",
	})
	return true
}
