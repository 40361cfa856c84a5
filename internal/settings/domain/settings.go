package domain

import "errors"

// SummaryLength selects the prompt's length hint.
type SummaryLength string

const (
	LengthShort  SummaryLength = "short"
	LengthMedium SummaryLength = "medium"
	LengthLong   SummaryLength = "long"
)

// Settings is the per-user delivery configuration.
type Settings struct {
	UserID        string        `json:"userId" gorm:"primaryKey"`
	EmailEnabled  bool          `json:"emailEnabled"`
	NotionEnabled bool          `json:"notionEnabled"`
	DailyTime     string        `json:"dailyTime"` // HH:MM, local server time
	EmailAddress  string        `json:"emailAddress,omitempty"`
	NotionPageID  string        `json:"notionPageId,omitempty"`
	SummaryLength SummaryLength `json:"summaryLength"`
}

func (Settings) TableName() string {
	return "user_settings"
}

// Defaults returns the settings a user gets before saving any.
func Defaults(userID string) *Settings {
	return &Settings{
		UserID:        userID,
		EmailEnabled:  true,
		NotionEnabled: false,
		DailyTime:     "09:00",
		SummaryLength: LengthMedium,
	}
}

// ErrNotSupported is returned by destinations that are accepted in settings
// but have no working sender yet (Notion).
var ErrNotSupported = errors.New("destination not supported yet")
