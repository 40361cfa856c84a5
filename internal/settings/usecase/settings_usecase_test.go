package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"linkfeed-backend/internal/settings/domain"
	"linkfeed-backend/internal/settings/repository"
)

func TestGet_ReturnsDefaultsWhenUnset(t *testing.T) {
	uc := NewSettingsUsecase(repository.NewMemorySettingsRepository())

	settings, err := uc.Get("user-1")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", settings.UserID)
	assert.True(t, settings.EmailEnabled)
	assert.False(t, settings.NotionEnabled)
	assert.Equal(t, "09:00", settings.DailyTime)
	assert.Equal(t, domain.LengthMedium, settings.SummaryLength)
}

func TestUpdate_RoundTrip(t *testing.T) {
	uc := NewSettingsUsecase(repository.NewMemorySettingsRepository())

	saved, err := uc.Update("user-1", &domain.Settings{
		EmailEnabled:  false,
		DailyTime:     "18:30",
		EmailAddress:  "other@example.com",
		SummaryLength: domain.LengthLong,
	})
	assert.NoError(t, err)
	assert.Equal(t, "user-1", saved.UserID, "userID comes from the session, not the body")

	got, err := uc.Get("user-1")
	assert.NoError(t, err)
	assert.False(t, got.EmailEnabled)
	assert.Equal(t, "18:30", got.DailyTime)
	assert.Equal(t, "other@example.com", got.EmailAddress)
	assert.Equal(t, domain.LengthLong, got.SummaryLength)
}

func TestUpdate_EmptyLengthDefaultsToMedium(t *testing.T) {
	uc := NewSettingsUsecase(repository.NewMemorySettingsRepository())

	saved, err := uc.Update("user-1", &domain.Settings{DailyTime: "09:00"})
	assert.NoError(t, err)
	assert.Equal(t, domain.LengthMedium, saved.SummaryLength)
}

func TestUpdate_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		settings domain.Settings
	}{
		{"bad time format", domain.Settings{DailyTime: "9am", SummaryLength: domain.LengthShort}},
		{"out of range time", domain.Settings{DailyTime: "25:00", SummaryLength: domain.LengthShort}},
		{"unknown length", domain.Settings{DailyTime: "09:00", SummaryLength: "enormous"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewMemorySettingsRepository()
			uc := NewSettingsUsecase(repo)

			_, err := uc.Update("user-1", &tt.settings)
			assert.Error(t, err)

			stored, _ := repo.Get("user-1")
			assert.Nil(t, stored, "rejected updates must not be saved")
		})
	}
}
