package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cookie names shared between backend and frontend.
const (
	TokenCookie = "token"
	CSRFCookie  = "XSRF-TOKEN"
)

// CookieManager writes and clears the session and CSRF cookies.
// The token cookie is always HttpOnly; Secure and SameSite=Lax are
// applied only in production so the scaffold works over plain HTTP in
// development.
type CookieManager struct {
	Domain     string
	Production bool
}

func NewCookieManager(domain string, production bool) *CookieManager {
	return &CookieManager{Domain: domain, Production: production}
}

func (m *CookieManager) sameSite() http.SameSite {
	if m.Production {
		return http.SameSiteLaxMode
	}
	return http.SameSiteDefaultMode
}

// SetToken stores the session token. maxAgeSeconds is the token
// lifetime in whole seconds; Go cookies take seconds where a JS
// Set-Cookie helper would take milliseconds.
func (m *CookieManager) SetToken(c *gin.Context, token string, maxAgeSeconds int) {
	c.SetSameSite(m.sameSite())
	c.SetCookie(TokenCookie, token, maxAgeSeconds, "/", m.Domain, m.Production, true)
}

// ClearToken removes the session token cookie.
func (m *CookieManager) ClearToken(c *gin.Context) {
	c.SetSameSite(m.sameSite())
	c.SetCookie(TokenCookie, "", -1, "/", m.Domain, m.Production, true)
}

// SetCSRF stores the CSRF token. Not HttpOnly: the frontend must read
// it and echo it back in the X-XSRF-TOKEN header.
func (m *CookieManager) SetCSRF(c *gin.Context, token string) {
	c.SetSameSite(m.sameSite())
	c.SetCookie(CSRFCookie, token, 0, "/", m.Domain, m.Production, false)
}
