package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authrepo "linkfeed-backend/internal/auth/repository"
	authusecase "linkfeed-backend/internal/auth/usecase"
	emaildelivery "linkfeed-backend/internal/email/delivery"
	emailusecase "linkfeed-backend/internal/email/usecase"
	"linkfeed-backend/internal/feed"
	settingsdelivery "linkfeed-backend/internal/settings/delivery"
	settingsrepo "linkfeed-backend/internal/settings/repository"
	settingsusecase "linkfeed-backend/internal/settings/usecase"
	summarydelivery "linkfeed-backend/internal/summary/delivery"
	summaryrepo "linkfeed-backend/internal/summary/repository"
	summaryusecase "linkfeed-backend/internal/summary/usecase"
	"linkfeed-backend/pkg/config"
	"linkfeed-backend/pkg/gemini"
	"linkfeed-backend/pkg/mailer"
)

func testEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "test-secret", DashboardURL: "https://dash.example.com"}

	userRepo := authrepo.NewMemoryUserRepository()
	authUC := authusecase.NewAuthUsecase(userRepo, cfg)

	summaryRepo := summaryrepo.NewMemorySummaryRepository()
	settingsRepo := settingsrepo.NewMemorySettingsRepository()

	emailUC, err := emailusecase.NewEmailUsecase(mailer.NewLogSender(), cfg.DashboardURL)
	assert.NoError(t, err)

	summarizeUC := summaryusecase.NewSummarizeUsecase(gemini.NewGeminiService(""))
	connector := feed.NewMockConnector("client", "secret", "https://app.example.com/callback")
	generateUC := summaryusecase.NewGenerateUsecase(
		connector,
		summarizeUC,
		summaryRepo,
		settingsRepo,
		summaryusecase.NewEmailDestination(emailUC),
		summaryusecase.NewNotionDestination(),
	)

	h := NewHandler(
		authUC,
		summarydelivery.NewSummaryHandler(summarizeUC, generateUC),
		emaildelivery.NewEmailHandler(emailUC),
		settingsdelivery.NewSettingsHandler(settingsusecase.NewSettingsUsecase(settingsRepo)),
		feed.NewHandler(connector),
	)
	return h.Engine()
}

func TestEngine_Health(t *testing.T) {
	r := testEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestEngine_PreflightAnswers204WithCORS(t *testing.T) {
	r := testEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/functions/summarize-feed", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestEngine_CORSHeadersOnEveryResponse(t *testing.T) {
	r := testEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestEngine_WrongVerbIs405(t *testing.T) {
	r := testEngine(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/functions/summarize-feed"},
		{http.MethodDelete, "/api/functions/send-summary-email"},
		{http.MethodPut, "/api/auth/login"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "%s %s", tt.method, tt.path)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
	}
}

func TestEngine_ProtectedRoutesRequireAuth(t *testing.T) {
	r := testEngine(t)

	for _, path := range []string{"/api/summaries", "/api/settings", "/api/feed/connect"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestEngine_UnknownRouteIs404(t *testing.T) {
	r := testEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
