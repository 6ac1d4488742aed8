package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/satriajanaka/go-auth-scaffold/internal/application"
	"github.com/satriajanaka/go-auth-scaffold/internal/domain/entity"
	"github.com/satriajanaka/go-auth-scaffold/pkg/helpers"
	"github.com/satriajanaka/go-auth-scaffold/pkg/response"
	"github.com/satriajanaka/go-auth-scaffold/pkg/tokens"
)

// CtxUserKey is the gin context key holding the restored SafeUser.
const CtxUserKey = "currentUser"

// RestoreUser resolves the session identity from the token cookie, once
// per request, before any handler that needs it. An absent cookie is
// not an error: the request simply proceeds anonymous. A cookie that no
// longer verifies, or whose account is gone, is cleared from the
// response so the client stops sending it.
func RestoreUser(svc *application.Service, tok *tokens.Manager, cookies *helpers.CookieManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(helpers.TokenCookie)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		claims, ok := tok.Verify(raw)
		if !ok {
			cookies.ClearToken(c)
			c.Next()
			return
		}

		// Re-fetch so the identity reflects current account state
		// rather than the possibly stale embedded projection.
		u, err := svc.GetCurrentUser(c.Request.Context(), claims.ID)
		if err != nil {
			cookies.ClearToken(c)
			c.Next()
			return
		}

		c.Set(CtxUserKey, u.ToSafeUser())
		c.Next()
	}
}

// CurrentUser returns the restored identity for this request, if any.
func CurrentUser(c *gin.Context) (entity.SafeUser, bool) {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return entity.SafeUser{}, false
	}
	su, ok := v.(entity.SafeUser)
	return su, ok
}

// RequireAuth short-circuits with 401 when restoration left the request
// anonymous. It composes on top of RestoreUser and must be registered
// after it.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
