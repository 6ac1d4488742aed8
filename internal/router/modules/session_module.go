package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/satriajanaka/go-auth-scaffold/internal/container"
	handlers "github.com/satriajanaka/go-auth-scaffold/internal/interface/http"
	"github.com/satriajanaka/go-auth-scaffold/internal/interface/middleware"
)

// SessionModule wires the session resource.
// GET /api/session restores the current user, POST logs in and DELETE
// logs out. RestoreUser already ran on the /api group, so Restore only
// reads the context.
type SessionModule struct {
	Handler *handlers.SessionHandler
}

func NewSessionModule(h *handlers.SessionHandler) *SessionModule {
	return &SessionModule{Handler: h}
}

func (m *SessionModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.GET("/session", m.Handler.Restore)
	rg.POST("/session", loginLimiter, m.Handler.Login)
	rg.DELETE("/session", m.Handler.Logout)
}
