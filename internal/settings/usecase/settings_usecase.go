package usecase

import (
	"fmt"
	"time"

	"linkfeed-backend/internal/settings/domain"
	"linkfeed-backend/internal/settings/repository"
)

// SettingsUsecase reads and updates per-user delivery configuration.
type SettingsUsecase interface {
	Get(userID string) (*domain.Settings, error)
	Update(userID string, settings *domain.Settings) (*domain.Settings, error)
}

type settingsUsecase struct {
	repo repository.SettingsRepository
}

func NewSettingsUsecase(repo repository.SettingsRepository) SettingsUsecase {
	return &settingsUsecase{repo: repo}
}

// Get returns the saved settings, or the defaults when none exist yet.
func (u *settingsUsecase) Get(userID string) (*domain.Settings, error) {
	settings, err := u.repo.Get(userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return domain.Defaults(userID), nil
	}
	return settings, nil
}

func (u *settingsUsecase) Update(userID string, settings *domain.Settings) (*domain.Settings, error) {
	if _, err := time.Parse("15:04", settings.DailyTime); err != nil {
		return nil, fmt.Errorf("dailyTime must be HH:MM, got %q", settings.DailyTime)
	}

	switch settings.SummaryLength {
	case domain.LengthShort, domain.LengthMedium, domain.LengthLong:
	case "":
		settings.SummaryLength = domain.LengthMedium
	default:
		return nil, fmt.Errorf("unknown summaryLength %q", settings.SummaryLength)
	}

	settings.UserID = userID
	if err := u.repo.Save(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
