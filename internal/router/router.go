// Package router defines how HTTP routes are registered for the API.  Each
// feature area gets its own Register function; the groups all live under
// /api/v1 and attach the JWT and role middleware they need at construction
// time.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ultroidx/movie-platform/internal/handler"
	"github.com/ultroidx/movie-platform/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes.  Register, login,
// refresh and the one-time admin bootstrap are unauthenticated; the profile
// echo and logout endpoints require a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/init-admin", a.InitAdmin)

	auth := e.Group("/api/v1/auth", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	auth.POST("/logout", a.Logout)
}
