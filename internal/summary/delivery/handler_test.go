package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authdomain "linkfeed-backend/internal/auth/domain"
	settingsdomain "linkfeed-backend/internal/settings/domain"
	"linkfeed-backend/internal/summary/domain"
	"linkfeed-backend/pkg/gemini"
)

type stubSummarizer struct {
	result *domain.SummaryResult
	err    error
}

func (s *stubSummarizer) Summarize(ctx context.Context, userID string, posts []domain.FeedPost, length settingsdomain.SummaryLength) (*domain.SummaryResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubGenerator struct {
	rec  *domain.FeedSummary
	list []domain.FeedSummary
	err  error
}

func (s *stubGenerator) Generate(ctx context.Context, user *authdomain.User) (*domain.FeedSummary, error) {
	return s.rec, s.err
}

func (s *stubGenerator) ListSummaries(userID string) ([]domain.FeedSummary, error) {
	return s.list, s.err
}

func newSummaryRouter(summarizer *stubSummarizer, generator *stubGenerator, user *authdomain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSummaryHandler(summarizer, generator)
	r.POST("/api/functions/summarize-feed", h.SummarizeFeed)

	authed := r.Group("/api", func(c *gin.Context) {
		if user != nil {
			c.Set("user", user)
		}
		c.Next()
	})
	authed.GET("/summaries", h.GetSummaries)
	authed.POST("/summaries/generate", h.GenerateSummary)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSummarizeFeed_OK(t *testing.T) {
	summarizer := &stubSummarizer{result: &domain.SummaryResult{
		Summary:   "A digest.",
		KeyTopics: []string{"AI"},
		Insights:  []string{"Post more"},
		PostCount: 2,
	}}
	r := newSummaryRouter(summarizer, &stubGenerator{}, nil)

	w := doJSON(r, http.MethodPost, "/api/functions/summarize-feed", gin.H{
		"userId": "user-1",
		"linkedInPosts": []gin.H{
			{"id": "1", "author": "A", "content": "hello"},
			{"id": "2", "author": "B", "content": "world"},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp domain.SummaryResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A digest.", resp.Summary)
	assert.Equal(t, 2, resp.PostCount)
}

func TestSummarizeFeed_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, "Invalid request data"},
		{"key missing", gemini.ErrNotConfigured, http.StatusInternalServerError, "Google AI API key not configured"},
		{"no candidates", fmt.Errorf("%w: %w", domain.ErrUpstream, gemini.ErrNoCandidates), http.StatusInternalServerError, "No response from AI"},
		{"upstream failure", fmt.Errorf("%w: status 503", domain.ErrUpstream), http.StatusInternalServerError, "Failed to generate summary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newSummaryRouter(&stubSummarizer{err: tt.err}, &stubGenerator{}, nil)

			w := doJSON(r, http.MethodPost, "/api/functions/summarize-feed", gin.H{
				"userId":        "user-1",
				"linkedInPosts": []gin.H{{"id": "1", "content": "hello"}},
			})

			assert.Equal(t, tt.wantCode, w.Code)
			var resp map[string]any
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp["error"])
		})
	}
}

func TestSummarizeFeed_MalformedBody(t *testing.T) {
	r := newSummaryRouter(&stubSummarizer{}, &stubGenerator{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/functions/summarize-feed", bytes.NewBufferString("[1,2"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request data"}`, w.Body.String())
}

func TestGetSummaries_WrapsList(t *testing.T) {
	user := &authdomain.User{ID: "user-1", Email: "user@example.com"}
	generator := &stubGenerator{list: []domain.FeedSummary{{ID: "rec-1", UserID: "user-1"}}}
	r := newSummaryRouter(&stubSummarizer{}, generator, user)

	w := doJSON(r, http.MethodGet, "/api/summaries", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Summaries []domain.FeedSummary `json:"summaries"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Summaries, 1)
	assert.Equal(t, "rec-1", resp.Summaries[0].ID)
}

func TestGetSummaries_Unauthenticated(t *testing.T) {
	r := newSummaryRouter(&stubSummarizer{}, &stubGenerator{}, nil)

	w := doJSON(r, http.MethodGet, "/api/summaries", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGenerateSummary_ReturnsRecord(t *testing.T) {
	user := &authdomain.User{ID: "user-1", Email: "user@example.com"}
	generator := &stubGenerator{rec: &domain.FeedSummary{ID: "rec-9", UserID: "user-1", SentToEmail: true}}
	r := newSummaryRouter(&stubSummarizer{}, generator, user)

	w := doJSON(r, http.MethodPost, "/api/summaries/generate", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var rec domain.FeedSummary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "rec-9", rec.ID)
	assert.True(t, rec.SentToEmail)
}
