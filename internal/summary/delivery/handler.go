package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "linkfeed-backend/internal/auth/domain"
	"linkfeed-backend/internal/summary/domain"
	"linkfeed-backend/internal/summary/usecase"
	"linkfeed-backend/pkg/gemini"
)

// SummaryHandler serves the summarize-feed function endpoint and the
// dashboard's summary routes.
type SummaryHandler struct {
	summarizeUC usecase.SummarizeUsecase
	generateUC  usecase.GenerateUsecase
}

func NewSummaryHandler(summarizeUC usecase.SummarizeUsecase, generateUC usecase.GenerateUsecase) *SummaryHandler {
	return &SummaryHandler{
		summarizeUC: summarizeUC,
		generateUC:  generateUC,
	}
}

// SummarizeRequest is the wire body of POST /api/functions/summarize-feed.
type SummarizeRequest struct {
	UserID        string            `json:"userId"`
	LinkedInPosts []domain.FeedPost `json:"linkedInPosts"`
}

// SummarizeFeed handles POST /api/functions/summarize-feed.
func (h *SummaryHandler) SummarizeFeed(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	result, err := h.summarizeUC.Summarize(c.Request.Context(), req.UserID, req.LinkedInPosts, "")
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		case errors.Is(err, gemini.ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Google AI API key not configured"})
		case errors.Is(err, gemini.ErrNoCandidates):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No response from AI"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// GenerateSummary handles POST /api/summaries/generate: it runs the whole
// dashboard flow server-side for the authenticated user.
func (h *SummaryHandler) GenerateSummary(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	rec, err := h.generateUC.Generate(c.Request.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		case errors.Is(err, gemini.ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Google AI API key not configured"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate summary", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, rec)
}

// GetSummaries handles GET /api/summaries: the user's recent records,
// newest first, capped for display.
func (h *SummaryHandler) GetSummaries(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	list, err := h.generateUC.ListSummaries(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load summaries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summaries": list})
}

func currentUser(c *gin.Context) *authdomain.User {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return nil
	}
	userData, ok := user.(*authdomain.User)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user data"})
		return nil
	}
	return userData
}
