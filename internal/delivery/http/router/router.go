// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"roster/internal/delivery/http/middleware"
	"roster/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	OrganisationHandler *handler.OrganisationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	organisationHandler *handler.OrganisationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		organisationHandler: params.OrganisationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Everything under /api requires a valid access token
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/users/:id", r.userHandler.GetUser)

		apiGroup.POST("/organisations", r.organisationHandler.Create)
		apiGroup.GET("/organisations", r.organisationHandler.List)
		apiGroup.GET("/organisations/:orgId", r.organisationHandler.Get)
		apiGroup.POST("/organisations/:orgId/users", r.organisationHandler.AddMember)
		apiGroup.GET("/organisations/:orgId/qrcode", r.organisationHandler.InviteQR)
	}
}
