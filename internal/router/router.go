package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/supperclub-dev/supperclub/internal/handlers"
	"github.com/supperclub-dev/supperclub/internal/middleware"
	"github.com/supperclub-dev/supperclub/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", handlers.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		users := api.Group("/users", middleware.AuthMiddleware())
		{
			users.GET("/me", handlers.Me)
			users.PATCH("/me", handlers.UpdateMyProfile)
			users.GET("/:user_id", handlers.GetUserProfile)
		}

		events := api.Group("/events")
		{
			events.GET("", handlers.ListEvents)
			events.GET("/:event_id", handlers.GetEvent)

			authed := events.Group("", middleware.AuthMiddleware())
			{
				authed.POST("", handlers.CreateEvent)
				authed.GET("/my-events", handlers.ListMyEvents)
				authed.PATCH("/:event_id", handlers.UpdateEvent)
				authed.POST("/:event_id/confirm", handlers.ConfirmEvent)
				authed.POST("/:event_id/cancel", handlers.CancelEvent)
				authed.POST("/:event_id/complete", handlers.CompleteEvent)
				authed.POST("/:event_id/food-items", handlers.AddFoodItem)
			}
		}

		rsvps := api.Group("/rsvps", middleware.AuthMiddleware())
		{
			rsvps.POST("", handlers.CreateRSVP)
			rsvps.GET("/my-rsvps", handlers.ListMyRSVPs)
			rsvps.GET("/event/:event_id", handlers.ListEventRSVPs)
			rsvps.PATCH("/:rsvp_id", handlers.UpdateRSVP)
			rsvps.POST("/:rsvp_id/cancel", handlers.CancelRSVP)
			rsvps.POST("/:rsvp_id/status", handlers.UpdateRSVPStatus)
		}

		invites := api.Group("/invites", middleware.AuthMiddleware())
		{
			invites.POST("", handlers.CreateInvite)
			invites.GET("/event/:event_id", handlers.ListEventInvites)
			invites.GET("/my-invites", handlers.ListMyInvites)
			invites.POST("/:invite_id/accept", handlers.AcceptInvite)
			invites.POST("/:invite_id/decline", handlers.DeclineInvite)
		}

		referrals := api.Group("/referrals")
		{
			referrals.GET("/validate/:code", handlers.ValidateReferralCode)

			authed := referrals.Group("", middleware.AuthMiddleware())
			{
				authed.GET("/my-code", handlers.GetMyReferralCode)
				authed.GET("/stats", handlers.GetReferralStats)
			}
		}
	}

	return r
}
