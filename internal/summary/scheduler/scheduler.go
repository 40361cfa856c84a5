package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	settingsrepo "linkfeed-backend/internal/settings/repository"
	"linkfeed-backend/internal/summary/usecase"
)

// DailyScheduler enqueues a generation job for every user whose configured
// dailyTime matches the current minute.
type DailyScheduler struct {
	settingsRepo settingsrepo.SettingsRepository
	worker       *usecase.GenerateWorkerService
	cron         *cron.Cron
}

func NewDailyScheduler(settingsRepo settingsrepo.SettingsRepository, worker *usecase.GenerateWorkerService) *DailyScheduler {
	return &DailyScheduler{
		settingsRepo: settingsRepo,
		worker:       worker,
		cron:         cron.New(),
	}
}

// Start begins the per-minute tick. The tick granularity matches the HH:MM
// resolution of Settings.DailyTime.
func (s *DailyScheduler) Start() error {
	if _, err := s.cron.AddFunc("* * * * *", s.tick); err != nil {
		return err
	}
	s.cron.Start()
	log.Println("[Scheduler] Daily summary scheduler started")
	return nil
}

// Stop stops the cron loop; a running tick finishes first.
func (s *DailyScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[Scheduler] Daily summary scheduler stopped")
}

func (s *DailyScheduler) tick() {
	now := cronNow()
	due, err := s.settingsRepo.ListByDailyTime(now)
	if err != nil {
		log.Printf("[Scheduler] Failed to list due users: %v", err)
		return
	}

	for _, settings := range due {
		if !settings.EmailEnabled && !settings.NotionEnabled {
			continue
		}
		if !s.worker.QueueJob(usecase.GenerateJob{UserID: settings.UserID}) {
			log.Printf("[Scheduler] Job queue full, skipping user %s", settings.UserID)
		}
	}

	if len(due) > 0 {
		log.Printf("[Scheduler] Queued %d scheduled generation(s) for %s", len(due), now)
	}
}

func cronNow() string {
	return time.Now().Format("15:04")
}
