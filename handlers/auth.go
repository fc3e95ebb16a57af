package handlers

import (
	"net/http"

	"github.com/eassylife/b2bportal/middleware"
	"github.com/eassylife/b2bportal/models"
	"github.com/eassylife/b2bportal/services/auth"
	"github.com/eassylife/b2bportal/session"
	"github.com/eassylife/b2bportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the auth lifecycle over HTTP.
type AuthHandler struct {
	Service auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// LoginHandler exchanges credentials and commits the session cookies on
// success. A failed login writes nothing, so a previously valid session
// survives a bad re-login attempt.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login request", err.Error())
		return
	}

	sess, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		utils.JSONError(c, http.StatusUnauthorized, "Login failed", "Invalid email or password")
		return
	}

	if err := session.Write(c.Writer, sess); err != nil {
		logger.Error("Failed to persist session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": sess.User})
}

// LogoutHandler best-effort notifies the upstream and unconditionally clears
// the session cookies. It never fails from the caller's perspective.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	sess := middleware.GetSession(c)
	h.Service.Logout(c.Request.Context(), sess)
	session.Clear(c.Writer)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// MeHandler returns the session's cached profile.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, gin.H{"user": sess.User, "status": sess.Status.String()})
}

// RefreshProfileHandler refetches the profile and re-persists the session
// with the fresh copy. Authentication status is untouched on failure.
func (h *AuthHandler) RefreshProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	sess := middleware.GetSession(c)

	user, err := h.Service.RefreshProfile(c.Request.Context(), sess)
	if err != nil {
		if middleware.HandleUpstreamAuthLoss(c, err) {
			return
		}
		logger.Warn("Profile refresh failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to refresh profile", "")
		return
	}

	sess.User = user
	if err := session.Write(c.Writer, sess); err != nil {
		logger.Error("Failed to persist refreshed session", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
