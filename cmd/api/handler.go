package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authusecase "linkfeed-backend/internal/auth/usecase"
	emaildelivery "linkfeed-backend/internal/email/delivery"
	"linkfeed-backend/internal/feed"
	settingsdelivery "linkfeed-backend/internal/settings/delivery"
	summarydelivery "linkfeed-backend/internal/summary/delivery"
)

type Handler struct {
	authUsecase     authusecase.AuthUsecase
	summaryHandler  *summarydelivery.SummaryHandler
	emailHandler    *emaildelivery.EmailHandler
	settingsHandler *settingsdelivery.SettingsHandler
	feedHandler     *feed.Handler
}

func NewHandler(
	authUsecase authusecase.AuthUsecase,
	summaryHandler *summarydelivery.SummaryHandler,
	emailHandler *emaildelivery.EmailHandler,
	settingsHandler *settingsdelivery.SettingsHandler,
	feedHandler *feed.Handler,
) *Handler {
	return &Handler{
		authUsecase:     authUsecase,
		summaryHandler:  summaryHandler,
		emailHandler:    emailHandler,
		settingsHandler: settingsHandler,
		feedHandler:     feedHandler,
	}
}

// Engine assembles the routing tree. Split from Start so tests can drive it
// with httptest.
func (h *Handler) Engine() *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())

	// Wrong-verb requests on known paths answer 405, not 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	SetupRoutes(r, h.authUsecase, h.summaryHandler, h.emailHandler, h.settingsHandler, h.feedHandler)

	return r
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	return h.Engine().Run(addr)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
