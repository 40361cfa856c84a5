package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	settingsdomain "linkfeed-backend/internal/settings/domain"
	"linkfeed-backend/internal/summary/domain"
	"linkfeed-backend/pkg/gemini"
)

// TextGenerator produces free-form text from a prompt. *gemini.GeminiService
// satisfies this.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// SummarizeUsecase turns a batch of feed posts into a structured summary.
type SummarizeUsecase interface {
	Summarize(ctx context.Context, userID string, posts []domain.FeedPost, length settingsdomain.SummaryLength) (*domain.SummaryResult, error)
}

type summarizeUsecase struct {
	generator TextGenerator
}

func NewSummarizeUsecase(generator TextGenerator) SummarizeUsecase {
	return &summarizeUsecase{generator: generator}
}

func (u *summarizeUsecase) Summarize(ctx context.Context, userID string, posts []domain.FeedPost, length settingsdomain.SummaryLength) (*domain.SummaryResult, error) {
	if userID == "" || len(posts) == 0 {
		return nil, domain.ErrInvalidInput
	}

	prompt := buildPrompt(posts, length)

	raw, err := u.generator.GenerateContent(ctx, prompt)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}

	parsed := parseModelOutput(raw)

	return &domain.SummaryResult{
		Summary:   parsed.Summary,
		KeyTopics: parsed.KeyTopics,
		PostCount: len(posts), // always the input count, never model-derived
		Insights:  parsed.Insights,
	}, nil
}

// serializePosts renders each post as a fixed-format text block, preserving
// input order.
func serializePosts(posts []domain.FeedPost) string {
	blocks := make([]string, len(posts))
	for i, post := range posts {
		blocks[i] = fmt.Sprintf("Author: %s\nContent: %s\nEngagement: %d likes, %d comments, %d shares\nTime: %s\n---",
			post.Author, post.Content,
			post.Engagement.Likes, post.Engagement.Comments, post.Engagement.Shares,
			post.Timestamp)
	}
	return strings.Join(blocks, "\n\n")
}

func lengthHint(length settingsdomain.SummaryLength) string {
	switch length {
	case settingsdomain.LengthShort:
		return "1-2 paragraph"
	case settingsdomain.LengthLong:
		return "3-4 paragraph"
	default:
		return "2-3 paragraph"
	}
}

func buildPrompt(posts []domain.FeedPost, length settingsdomain.SummaryLength) string {
	return fmt.Sprintf(`
You are an AI assistant that analyzes LinkedIn feed posts and creates comprehensive summaries.

Analyze the following LinkedIn posts and provide:
1. A comprehensive summary of the main themes and discussions
2. Key topics that were most prominent
3. Notable insights or trends
4. Important announcements or news

LinkedIn Posts Data:
%s

Please respond in the following JSON format:
{
  "summary": "A comprehensive %s summary of the main themes, discussions, and notable content from the LinkedIn feed",
  "keyTopics": ["topic1", "topic2", "topic3", "topic4", "topic5"],
  "insights": ["insight1", "insight2", "insight3"]
}

Focus on:
- Professional development and career insights
- Industry trends and news
- Business and technology updates
- Networking and thought leadership content
- Educational and informational posts

Make the summary engaging and actionable for a professional audience.
`, serializePosts(posts), lengthHint(length))
}
