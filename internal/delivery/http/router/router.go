// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tasker/internal/delivery/http/middleware"
	"tasker/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	TodoHandler    *handler.TodoHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	todoHandler    *handler.TodoHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		todoHandler:    params.TodoHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Registration and reads are public; profile mutation requires the
	// token of the account being changed.
	userGroup := e.Group("/users")
	{
		userGroup.POST("/", r.userHandler.Register)
		userGroup.GET("/", r.userHandler.List)
		userGroup.GET("/:id", r.userHandler.Get)
		userGroup.PUT("/:id", r.userHandler.Update, r.authMiddleware.Authenticate)
		userGroup.DELETE("/:id", r.userHandler.Delete, r.authMiddleware.Authenticate)
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/token", r.authHandler.Login)
		authGroup.POST("/refresh_token", r.authHandler.Refresh, r.authMiddleware.Authenticate)
	}

	// Todos are entirely private to the authenticated owner.
	todoGroup := e.Group("/todos")
	todoGroup.Use(r.authMiddleware.Authenticate)
	{
		todoGroup.POST("/", r.todoHandler.Create)
		todoGroup.GET("/", r.todoHandler.List)
		todoGroup.PATCH("/:id", r.todoHandler.Patch)
		todoGroup.DELETE("/:id", r.todoHandler.Delete)
	}
}
