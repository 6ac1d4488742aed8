package router

import (
	"github.com/satriajanaka/go-auth-scaffold/internal/application"
	"github.com/satriajanaka/go-auth-scaffold/internal/container"
	pginfra "github.com/satriajanaka/go-auth-scaffold/internal/infrastructure/postgres"
	handlers "github.com/satriajanaka/go-auth-scaffold/internal/interface/http"
	"github.com/satriajanaka/go-auth-scaffold/internal/interface/middleware"
	"github.com/satriajanaka/go-auth-scaffold/internal/router/modules"
)

// InitModules initializes all application modules and registers them
// with the router registry, including the group-level middleware that
// runs restoration exactly once per request.
// This function should be called once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewService(repo, container.GetLogger())

	// Session restoration and CSRF protection cover every /api route.
	r.Use(middleware.CSRF(container.GetCookies()))
	r.Use(middleware.RestoreUser(svc, container.GetTokens(), container.GetCookies()))

	sessionHandler := handlers.NewSessionHandler(svc, container.GetTokens(), container.GetCookies(), container.GetLogger(), cfg)
	userHandler := handlers.NewUserHandler(svc, container.GetTokens(), container.GetCookies(), container.GetLogger(), cfg)

	r.Add(modules.NewSessionModule(sessionHandler))
	r.Add(modules.NewUserModule(userHandler))

	if !cfg.IsProduction() {
		r.Add(modules.NewCSRFModule(handlers.NewCSRFHandler(container.GetCookies())))
	}
}
