// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"campusmap/internal/delivery/http/middleware"
	"campusmap/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PinHandler     *handler.PinHandler
	EventHandler   *handler.EventHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	pinHandler     *handler.PinHandler
	eventHandler   *handler.EventHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pinHandler:     params.PinHandler,
		eventHandler:   params.EventHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Pin routes. Reads are public, mutations require authentication.
	pinGroup := api.Group("/pins")
	{
		pinGroup.GET("", r.pinHandler.ListPins)
		pinGroup.POST("", r.pinHandler.CreatePin, r.authMiddleware.Authenticate)
		pinGroup.POST("/refresh", r.pinHandler.RefreshPins)
		pinGroup.GET("/user/:uid", r.pinHandler.UserPins)
		pinGroup.DELETE("/user/:uid", r.pinHandler.ClearUserPins, r.authMiddleware.Authenticate)
	}

	// Event discovery routes
	eventGroup := api.Group("/events")
	{
		eventGroup.GET("", r.eventHandler.ListEvents)
		eventGroup.GET("/map", r.eventHandler.MapEvents)
		eventGroup.GET("/:id", r.eventHandler.GetEvent)
		eventGroup.POST("/:id/views", r.eventHandler.RecordView)
	}

	api.GET("/trending", r.eventHandler.Trending)
	api.GET("/recommendations", r.eventHandler.Recommendations, r.authMiddleware.Authenticate)
	api.GET("/categories", r.eventHandler.Categories)

	// Engagement routes always act as the authenticated user
	userGroup := api.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.POST("/likes", r.userHandler.LikeEvent)
		userGroup.DELETE("/likes/:eventID", r.userHandler.UnlikeEvent)
		userGroup.POST("/bookmarks", r.userHandler.BookmarkEvent)
		userGroup.DELETE("/bookmarks/:eventID", r.userHandler.RemoveBookmark)
	}
}
