package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/satriajanaka/go-auth-scaffold/config"
	"github.com/satriajanaka/go-auth-scaffold/internal/application"
	"github.com/satriajanaka/go-auth-scaffold/internal/interface/middleware"
	"github.com/satriajanaka/go-auth-scaffold/pkg/helpers"
	"github.com/satriajanaka/go-auth-scaffold/pkg/response"
	"github.com/satriajanaka/go-auth-scaffold/pkg/tokens"
	"github.com/satriajanaka/go-auth-scaffold/pkg/validation"
)

// SessionHandler serves the session resource: restore, login, logout.
type SessionHandler struct {
	Svc     *application.Service
	Tokens  *tokens.Manager
	Cookies *helpers.CookieManager
	Logger  *logrus.Logger
	Cfg     *config.Config
}

func NewSessionHandler(svc *application.Service, tok *tokens.Manager, cookies *helpers.CookieManager, logger *logrus.Logger, cfg *config.Config) *SessionHandler {
	return &SessionHandler{Svc: svc, Tokens: tok, Cookies: cookies, Logger: logger, Cfg: cfg}
}

type loginRequest struct {
	Credential string `json:"credential" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// detail hides internals from clients in production; non-production
// deployments get the underlying error for debugging.
func (h *SessionHandler) detail(err error) interface{} {
	if h.Cfg.IsProduction() || err == nil {
		return nil
	}
	return err.Error()
}

// Restore GET /api/session
// Returns the current session user, or user: null for anonymous
// requests. Anonymous is a normal outcome, never an error.
func (h *SessionHandler) Restore(c *gin.Context) {
	if su, ok := middleware.CurrentUser(c); ok {
		response.Success(c, http.StatusOK, gin.H{"user": su}, "session", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": nil}, "session", nil)
}

// Login POST /api/session
func (h *SessionHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Authenticate(c.Request.Context(), req.Credential, req.Password)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	su := u.ToSafeUser()
	tok, exp, err := h.Tokens.Issue(su)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", su.ID).Error("issue session token failed")
		response.Error[any](c, http.StatusInternalServerError, "login failed", h.detail(err))
		return
	}
	h.Cookies.SetToken(c, tok, h.Cfg.SessionExpiresIn)
	response.Success(c, http.StatusOK, gin.H{"user": su}, "login successful", map[string]any{"expires_at": exp})
}

// Logout DELETE /api/session
func (h *SessionHandler) Logout(c *gin.Context) {
	h.Cookies.ClearToken(c)
	response.Success[any](c, http.StatusOK, gin.H{"message": "success"}, "logged out", nil)
}
