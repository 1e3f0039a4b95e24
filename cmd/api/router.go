package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coderr-backend/internal/shared/middleware"
	"coderr-backend/internal/shared/response"
	"coderr-backend/pkg/container"
)

// SetupRouter wires middleware and all domain routes.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	v1 := router.Group("/api/v1")

	v1.GET("/health", func(ctx *gin.Context) {
		if err := c.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", err.Error())
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	})

	// Endpoints reachable without a token.
	public := v1.Group("")
	c.ProfileHandler.RegisterPublicRoutes(public)
	c.OfferHandler.RegisterPublicRoutes(public)
	c.StatsHandler.RegisterPublicRoutes(public)

	// Everything else requires a valid token.
	authed := v1.Group("")
	authed.Use(middleware.Auth(c.JWTManager))

	staff := middleware.Staff()
	c.ProfileHandler.RegisterRoutes(authed, staff)
	c.OfferHandler.RegisterRoutes(authed)
	c.OrderHandler.RegisterRoutes(authed, staff)
	c.ReviewHandler.RegisterRoutes(authed)

	return router
}
