package repository

import (
	"errors"
	"sync"

	settingsdomain "linkfeed-backend/internal/settings/domain"

	"gorm.io/gorm"
)

// SettingsRepository stores per-user settings.
type SettingsRepository interface {
	// Get returns the user's settings, or nil when none have been saved.
	Get(userID string) (*settingsdomain.Settings, error)
	Save(settings *settingsdomain.Settings) error
	// ListByDailyTime returns settings of all users scheduled at the given
	// HH:MM time.
	ListByDailyTime(dailyTime string) ([]settingsdomain.Settings, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

func (r *settingsRepository) Get(userID string) (*settingsdomain.Settings, error) {
	var settings settingsdomain.Settings
	err := r.db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Save(settings *settingsdomain.Settings) error {
	return r.db.Save(settings).Error
}

func (r *settingsRepository) ListByDailyTime(dailyTime string) ([]settingsdomain.Settings, error) {
	var all []settingsdomain.Settings
	err := r.db.Where("daily_time = ?", dailyTime).Find(&all).Error
	if err != nil {
		return nil, err
	}
	return all, nil
}

// memorySettingsRepository keeps settings in process memory. Used when no
// database is configured and by unit tests.
type memorySettingsRepository struct {
	mu       sync.RWMutex
	settings map[string]settingsdomain.Settings
}

func NewMemorySettingsRepository() SettingsRepository {
	return &memorySettingsRepository{settings: make(map[string]settingsdomain.Settings)}
}

func (r *memorySettingsRepository) Get(userID string) (*settingsdomain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.settings[userID]
	if !ok {
		return nil, nil
	}
	copied := s
	return &copied, nil
}

func (r *memorySettingsRepository) Save(settings *settingsdomain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[settings.UserID] = *settings
	return nil
}

func (r *memorySettingsRepository) ListByDailyTime(dailyTime string) ([]settingsdomain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []settingsdomain.Settings
	for _, s := range r.settings {
		if s.DailyTime == dailyTime {
			out = append(out, s)
		}
	}
	return out, nil
}
