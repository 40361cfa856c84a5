package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"linkfeed-backend/internal/email/domain"
	"linkfeed-backend/internal/email/usecase"
)

// EmailHandler serves the send-summary-email function endpoint.
type EmailHandler struct {
	emailUsecase usecase.EmailUsecase
}

func NewEmailHandler(emailUsecase usecase.EmailUsecase) *EmailHandler {
	return &EmailHandler{emailUsecase: emailUsecase}
}

// SendSummaryEmail handles POST /api/functions/send-summary-email.
func (h *EmailHandler) SendSummaryEmail(c *gin.Context) {
	var req domain.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	result, err := h.emailUsecase.Send(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"messageId": result.MessageID,
		"message":   "Summary email sent successfully",
	})
}
