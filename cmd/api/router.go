package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "linkfeed-backend/internal/auth/delivery"
	authusecase "linkfeed-backend/internal/auth/usecase"
	emaildelivery "linkfeed-backend/internal/email/delivery"
	"linkfeed-backend/internal/feed"
	settingsdelivery "linkfeed-backend/internal/settings/delivery"
	summarydelivery "linkfeed-backend/internal/summary/delivery"
)

func SetupRoutes(
	r *gin.Engine,
	authUsecase authusecase.AuthUsecase,
	summaryHandler *summarydelivery.SummaryHandler,
	emailHandler *emaildelivery.EmailHandler,
	settingsHandler *settingsdelivery.SettingsHandler,
	feedHandler *feed.Handler,
) {
	authHandler := authdelivery.NewAuthHandler(authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Function endpoints: public, CORS-open, POST only. Auth headers
		// are accepted but not required here.
		functions := api.Group("/functions")
		{
			functions.POST("/summarize-feed", summaryHandler.SummarizeFeed)
			functions.POST("/send-summary-email", emailHandler.SendSummaryEmail)
		}

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authdelivery.AuthMiddleware(authUsecase), authHandler.Me)
		}

		// Summary routes (protected)
		summaries := api.Group("/summaries")
		summaries.Use(authdelivery.AuthMiddleware(authUsecase))
		{
			summaries.GET("", summaryHandler.GetSummaries)
			summaries.POST("/generate", summaryHandler.GenerateSummary)
		}

		// Settings routes (protected)
		settings := api.Group("/settings")
		settings.Use(authdelivery.AuthMiddleware(authUsecase))
		{
			settings.GET("", settingsHandler.GetSettings)
			settings.PUT("", settingsHandler.UpdateSettings)
		}

		// Feed connection routes (protected, mocked OAuth)
		feedRoutes := api.Group("/feed")
		feedRoutes.Use(authdelivery.AuthMiddleware(authUsecase))
		{
			feedRoutes.GET("/connect", feedHandler.Connect)
			feedRoutes.POST("/callback", feedHandler.Callback)
		}
	}
}
