package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/satriajanaka/go-auth-scaffold/internal/interface/http"
)

// CSRFModule exposes the development-only token bootstrap route.
type CSRFModule struct {
	Handler *handlers.CSRFHandler
}

func NewCSRFModule(h *handlers.CSRFHandler) *CSRFModule {
	return &CSRFModule{Handler: h}
}

func (m *CSRFModule) Register(rg *gin.RouterGroup) {
	rg.GET("/csrf/restore", m.Handler.Restore)
}
