package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/satriajanaka/go-auth-scaffold/pkg/helpers"
	"github.com/satriajanaka/go-auth-scaffold/pkg/response"
)

// CSRFHandler reissues the XSRF-TOKEN cookie. Registered only outside
// production, where the SPA dev server runs on a different port and
// needs a bootstrap route to obtain the cookie.
type CSRFHandler struct {
	Cookies *helpers.CookieManager
}

func NewCSRFHandler(cookies *helpers.CookieManager) *CSRFHandler {
	return &CSRFHandler{Cookies: cookies}
}

// Restore GET /api/csrf/restore
func (h *CSRFHandler) Restore(c *gin.Context) {
	tok, err := helpers.GenToken(32)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "token generation failed", nil)
		return
	}
	h.Cookies.SetCSRF(c, tok)
	response.Success[any](c, http.StatusOK, nil, "csrf token issued", nil)
}
