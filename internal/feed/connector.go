package feed

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	summarydomain "linkfeed-backend/internal/summary/domain"
)

// Connector supplies the feed-post batch for a user's summarization run.
//
// The real LinkedIn ingestion contract (pagination, rate limits, token
// refresh) is not specified yet; MockConnector stands in until it is.
type Connector interface {
	// AuthURL returns the OAuth authorize URL for connecting the account.
	AuthURL(state string) string
	// Connect exchanges an authorization code for feed access.
	Connect(ctx context.Context, userID, code string) error
	// FetchPosts returns the current feed batch, newest first.
	FetchPosts(ctx context.Context, userID string) ([]summarydomain.FeedPost, error)
}

var linkedInEndpoint = oauth2.Endpoint{
	AuthURL:  "https://www.linkedin.com/oauth/v2/authorization",
	TokenURL: "https://www.linkedin.com/oauth/v2/accessToken",
}

// MockConnector builds a real authorize URL from the OAuth client config but
// simulates the exchange and serves a fixed representative batch of posts.
type MockConnector struct {
	oauth *oauth2.Config
	delay time.Duration
}

func NewMockConnector(clientID, clientSecret, redirectURI string) *MockConnector {
	return &MockConnector{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{"r_liteprofile", "r_emailaddress"},
			Endpoint:     linkedInEndpoint,
		},
		delay: 2 * time.Second,
	}
}

func (m *MockConnector) AuthURL(state string) string {
	return m.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Connect simulates the OAuth code exchange with a fixed delay.
func (m *MockConnector) Connect(ctx context.Context, userID, code string) error {
	select {
	case <-time.After(m.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *MockConnector) FetchPosts(ctx context.Context, userID string) ([]summarydomain.FeedPost, error) {
	return SamplePosts(time.Now()), nil
}

// SamplePosts is the representative feed batch used until real feed
// ingestion exists. Timestamps are spread over the hours before now.
func SamplePosts(now time.Time) []summarydomain.FeedPost {
	return []summarydomain.FeedPost{
		{
			ID:         "1",
			Content:    "Excited to share that our AI startup just raised $10M Series A! The future of artificial intelligence in business automation is incredibly promising. Looking forward to scaling our team and expanding our product offerings.",
			Author:     "Sarah Chen, CEO at TechFlow AI",
			Timestamp:  now.Add(-2 * time.Hour).Format(time.RFC3339),
			Engagement: summarydomain.Engagement{Likes: 234, Comments: 45, Shares: 12},
		},
		{
			ID:         "2",
			Content:    "Remote work has fundamentally changed how we approach team collaboration. After 3 years of distributed teams, here are the key lessons: 1) Async communication is crucial 2) Regular video check-ins build trust 3) Clear documentation prevents confusion. What has your experience been?",
			Author:     "Michael Rodriguez, VP Engineering",
			Timestamp:  now.Add(-4 * time.Hour).Format(time.RFC3339),
			Engagement: summarydomain.Engagement{Likes: 156, Comments: 78, Shares: 23},
		},
		{
			ID:         "3",
			Content:    "Just completed my AWS Solutions Architect certification! The journey was challenging but incredibly rewarding. For anyone considering cloud certifications, my advice: hands-on practice is more valuable than just reading. Build real projects, break things, and learn from failures.",
			Author:     "Jennifer Park, Cloud Engineer",
			Timestamp:  now.Add(-6 * time.Hour).Format(time.RFC3339),
			Engagement: summarydomain.Engagement{Likes: 89, Comments: 34, Shares: 8},
		},
		{
			ID:         "4",
			Content:    "The latest developments in generative AI are reshaping content creation across industries. From marketing copy to code generation, we're seeing unprecedented productivity gains. However, the human element remains irreplaceable for strategy, creativity, and ethical oversight.",
			Author:     "David Kim, AI Research Director",
			Timestamp:  now.Add(-8 * time.Hour).Format(time.RFC3339),
			Engagement: summarydomain.Engagement{Likes: 312, Comments: 67, Shares: 45},
		},
		{
			ID:         "5",
			Content:    "Mentorship has been the cornerstone of my career growth. Today I'm launching a new initiative to connect senior developers with junior talent. If you're interested in either mentoring or being mentored, let's connect! Building the next generation of tech leaders is everyone's responsibility.",
			Author:     "Amanda Foster, Senior Software Architect",
			Timestamp:  now.Add(-10 * time.Hour).Format(time.RFC3339),
			Engagement: summarydomain.Engagement{Likes: 198, Comments: 56, Shares: 19},
		},
	}
}
