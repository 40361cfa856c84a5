package feed

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler exposes the mocked LinkedIn connect flow.
type Handler struct {
	connector Connector
}

func NewHandler(connector Connector) *Handler {
	return &Handler{connector: connector}
}

// Connect handles GET /api/feed/connect: returns the OAuth authorize URL.
func (h *Handler) Connect(c *gin.Context) {
	state := uuid.New().String()
	c.JSON(http.StatusOK, gin.H{
		"authUrl": h.connector.AuthURL(state),
		"state":   state,
	})
}

// Callback handles POST /api/feed/callback: exchanges the authorization
// code. The exchange is simulated until real feed ingestion exists.
func (h *Handler) Callback(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.connector.Connect(c.Request.Context(), userID, req.Code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to connect LinkedIn account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"connected": true})
}
