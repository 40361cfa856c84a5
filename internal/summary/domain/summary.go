package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Engagement holds the reaction counters of a single feed post.
type Engagement struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

// FeedPost is one externally authored LinkedIn item, the unit of
// summarization input. Immutable once received.
type FeedPost struct {
	ID         string     `json:"id"`
	Content    string     `json:"content"`
	Author     string     `json:"author"`
	Timestamp  string     `json:"timestamp"`
	Engagement Engagement `json:"engagement"`
}

// SummaryResult is the structured output of one summarization run.
// KeyTopics and Insights are always non-nil; PostCount always equals the
// number of input posts, never a model-derived value.
type SummaryResult struct {
	Summary   string   `json:"summary"`
	KeyTopics []string `json:"keyTopics"`
	PostCount int      `json:"postCount"`
	Insights  []string `json:"insights"`
}

// StringList stores a []string as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// FeedSummary is the persisted record of one summarization run for one user
// on one calendar day.
type FeedSummary struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	UserID        string     `json:"userId" gorm:"index;not null"`
	Date          string     `json:"date"` // calendar day, YYYY-MM-DD
	Summary       string     `json:"summary" gorm:"type:text"`
	PostCount     int        `json:"postCount"`
	KeyTopics     StringList `json:"keyTopics" gorm:"type:text"`
	CreatedAt     time.Time  `json:"createdAt"`
	SentToEmail   bool       `json:"sentToEmail"`
	SavedToNotion bool       `json:"savedToNotion"`
	// Position preserves insertion order: 0 is the newest record.
	Position int `json:"-" gorm:"index"`
}

func (FeedSummary) TableName() string {
	return "feed_summaries"
}

var (
	// ErrInvalidInput marks missing or malformed request data.
	ErrInvalidInput = errors.New("invalid request data")
	// ErrUpstream marks a failure of the generative-language API.
	ErrUpstream = errors.New("failed to generate summary")
)
