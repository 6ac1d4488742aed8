package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/satriajanaka/go-auth-scaffold/internal/container"
	handlers "github.com/satriajanaka/go-auth-scaffold/internal/interface/http"
	"github.com/satriajanaka/go-auth-scaffold/internal/interface/middleware"
)

// UserModule wires account creation.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/users", signupLimiter, m.Handler.Signup)
}
