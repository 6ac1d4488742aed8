package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/satriajanaka/go-auth-scaffold/config"
	"github.com/satriajanaka/go-auth-scaffold/internal/application"
	"github.com/satriajanaka/go-auth-scaffold/pkg/helpers"
	"github.com/satriajanaka/go-auth-scaffold/pkg/response"
	"github.com/satriajanaka/go-auth-scaffold/pkg/tokens"
	"github.com/satriajanaka/go-auth-scaffold/pkg/validation"
)

// UserHandler serves account creation. A successful signup behaves
// like a login: the session cookie is set on the response.
type UserHandler struct {
	Svc     *application.Service
	Tokens  *tokens.Manager
	Cookies *helpers.CookieManager
	Logger  *logrus.Logger
	Cfg     *config.Config
}

func NewUserHandler(svc *application.Service, tok *tokens.Manager, cookies *helpers.CookieManager, logger *logrus.Logger, cfg *config.Config) *UserHandler {
	return &UserHandler{Svc: svc, Tokens: tok, Cookies: cookies, Logger: logger, Cfg: cfg}
}

type signupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30,notemail"`
	Email    string `json:"email" binding:"required,email,min=3,max=256"`
	Password string `json:"password" binding:"required,pwd"`
}

// Signup POST /api/users
func (h *UserHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrUserExists) {
			response.Error[any](c, http.StatusBadRequest, "user already exists", nil)
			return
		}
		detail := interface{}(nil)
		if !h.Cfg.IsProduction() {
			detail = err.Error()
		}
		response.Error[any](c, http.StatusInternalServerError, "signup failed", detail)
		return
	}

	su := u.ToSafeUser()
	tok, exp, err := h.Tokens.Issue(su)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", su.ID).Error("issue session token failed")
		response.Error[any](c, http.StatusInternalServerError, "signup failed", nil)
		return
	}
	h.Cookies.SetToken(c, tok, h.Cfg.SessionExpiresIn)
	response.Success(c, http.StatusCreated, gin.H{"user": su}, "signup successful", map[string]any{"expires_at": exp})
}
