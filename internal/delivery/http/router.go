package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prismapp/prism-backend/internal/delivery/http/handler"
	"github.com/prismapp/prism-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler      *handler.AuthHandler
	profileHandler   *handler.ProfileHandler
	discoveryHandler *handler.DiscoveryHandler
	reactionHandler  *handler.ReactionHandler
	chatHandler      *handler.ChatHandler
	authMiddleware   *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	discoveryHandler *handler.DiscoveryHandler,
	reactionHandler *handler.ReactionHandler,
	chatHandler *handler.ChatHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:      authHandler,
		profileHandler:   profileHandler,
		discoveryHandler: discoveryHandler,
		reactionHandler:  reactionHandler,
		chatHandler:      chatHandler,
		authMiddleware:   authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.POST("/me", r.profileHandler.CreateMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.GET("/:user_id", r.profileHandler.GetProfileByUserID)
			}

			// Discovery routes
			protected.GET("/discover", r.discoveryHandler.Discover)

			// Reaction routes
			reactions := protected.Group("/reactions")
			{
				reactions.POST("/like", r.reactionHandler.Like)
				reactions.DELETE("/like/:profile_id", r.reactionHandler.Unlike)
				reactions.POST("/pass", r.reactionHandler.Pass)
				reactions.GET("/likes", r.reactionHandler.Likes)
				reactions.POST("/reset-passes", r.reactionHandler.ResetPasses)
			}

			// Chat routes
			chats := protected.Group("/chats")
			{
				chats.POST("/open", r.chatHandler.OpenChat)
				chats.GET("", r.chatHandler.ListConversations)
			}
		}
	}

	return router
}
