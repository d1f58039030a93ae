package http

import (
	"github.com/gdugdh24/godate-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/godate-backend/internal/delivery/http/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	messageHandler *handler.MessageHandler
	dailyHandler   *handler.DailyHandler
	routeHandler   *handler.RouteHandler
	ratingHandler  *handler.RatingHandler
	aiHandler      *handler.AIHandler
	authMiddleware *middleware.AuthMiddleware
	uploadsPath    string
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	messageHandler *handler.MessageHandler,
	dailyHandler *handler.DailyHandler,
	routeHandler *handler.RouteHandler,
	ratingHandler *handler.RatingHandler,
	aiHandler *handler.AIHandler,
	authMiddleware *middleware.AuthMiddleware,
	uploadsPath string,
) *Router {
	return &Router{
		authHandler:    authHandler,
		userHandler:    userHandler,
		messageHandler: messageHandler,
		dailyHandler:   dailyHandler,
		routeHandler:   routeHandler,
		ratingHandler:  ratingHandler,
		aiHandler:      aiHandler,
		authMiddleware: authMiddleware,
		uploadsPath:    uploadsPath,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}

	// Uploaded avatars are served directly.
	router.Static("/uploads", r.uploadsPath)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler)
		api.HEAD("/health", healthHandler)

		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
		}

		// Public catalog and leaderboard
		api.GET("/routes", r.routeHandler.List)
		api.GET("/rating", r.ratingHandler.Leaderboard)

		// AI proxy (public, mirrors the standalone generator)
		api.POST("/ai/generate", r.aiHandler.Generate)

		// Protected routes
		protected := api.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			users := protected.Group("/users")
			{
				users.GET("/me", r.userHandler.Me)
				users.POST("/logout", r.userHandler.Logout)
				users.POST("/avatar", r.userHandler.UpdateAvatar)
				users.POST("/request", r.userHandler.SendRequest)
				users.DELETE("/soulmate", r.userHandler.RemoveSoulmate)
				users.DELETE("/friend", r.userHandler.RemoveFriend)
			}

			messages := protected.Group("/messages")
			{
				messages.GET("", r.messageHandler.List)
				messages.POST("/act", r.messageHandler.Act)
			}

			dailies := protected.Group("/dailies")
			{
				dailies.GET("/today", r.dailyHandler.Today)
				dailies.POST("/complete", r.dailyHandler.Complete)
			}

			routes := protected.Group("/routes")
			{
				routes.POST("", r.routeHandler.Create)
				routes.GET("/mine", r.routeHandler.Mine)
				routes.GET("/favorites", r.routeHandler.Favorites)
				routes.POST("/like", r.routeHandler.Like)
				routes.POST("/favorite", r.routeHandler.Favorite)
				routes.DELETE("/favorite/:route_id", r.routeHandler.Unfavorite)
				routes.DELETE("/all", r.routeHandler.PurgeAll)
				routes.GET("/:route_id", r.routeHandler.Get)
				routes.PUT("/:route_id", r.routeHandler.Update)
				routes.DELETE("/:route_id", r.routeHandler.Delete)
			}

			protected.POST("/recommendations", r.aiHandler.Recommend)
		}
	}

	return router
}
