package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/satriajanaka/go-auth-scaffold/pkg/helpers"
	"github.com/satriajanaka/go-auth-scaffold/pkg/response"
)

// CSRFHeader is the request header that must echo the XSRF-TOKEN cookie.
const CSRFHeader = "X-XSRF-TOKEN"

// CSRF implements the double-submit cookie scheme: every request that
// arrives without an XSRF-TOKEN cookie gets a fresh one on the
// response, and state-changing methods must echo the cookie value in
// the X-XSRF-TOKEN header or are rejected with 403.
func CSRF(cookies *helpers.CookieManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieTok, err := c.Cookie(helpers.CSRFCookie)
		if err != nil || cookieTok == "" {
			fresh, genErr := helpers.GenToken(32)
			if genErr != nil {
				response.Error[any](c, http.StatusInternalServerError, "token generation failed", nil)
				c.Abort()
				return
			}
			cookies.SetCSRF(c, fresh)
			cookieTok = ""
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		headerTok := c.GetHeader(CSRFHeader)
		if cookieTok == "" || headerTok == "" ||
			subtle.ConstantTimeCompare([]byte(cookieTok), []byte(headerTok)) != 1 {
			response.Error[any](c, http.StatusForbidden, "invalid csrf token", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
