package repository

import (
	"sync"

	summarydomain "linkfeed-backend/internal/summary/domain"

	"gorm.io/gorm"
)

// SummaryRepository stores the per-user summary collection. Reads and writes
// cover the whole ordered list: callers do read-modify-write, last writer
// wins. There is no partial update.
type SummaryRepository interface {
	// GetSummaries returns the user's summaries, newest first.
	GetSummaries(userID string) ([]summarydomain.FeedSummary, error)
	// PutSummaries replaces the user's whole collection.
	PutSummaries(userID string, summaries []summarydomain.FeedSummary) error
}

// summaryRepository implements SummaryRepository over GORM
type summaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

func (r *summaryRepository) GetSummaries(userID string) ([]summarydomain.FeedSummary, error) {
	var summaries []summarydomain.FeedSummary
	err := r.db.Where("user_id = ?", userID).Order("position asc").Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *summaryRepository) PutSummaries(userID string, summaries []summarydomain.FeedSummary) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&summarydomain.FeedSummary{}).Error; err != nil {
			return err
		}
		for i := range summaries {
			summaries[i].UserID = userID
			summaries[i].Position = i
		}
		if len(summaries) == 0 {
			return nil
		}
		return tx.Create(&summaries).Error
	})
}

// memorySummaryRepository keeps the collections in process memory. Used when
// no database is configured and by unit tests.
type memorySummaryRepository struct {
	mu    sync.RWMutex
	lists map[string][]summarydomain.FeedSummary
}

func NewMemorySummaryRepository() SummaryRepository {
	return &memorySummaryRepository{lists: make(map[string][]summarydomain.FeedSummary)}
}

func (r *memorySummaryRepository) GetSummaries(userID string) ([]summarydomain.FeedSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.lists[userID]
	copied := make([]summarydomain.FeedSummary, len(list))
	copy(copied, list)
	return copied, nil
}

func (r *memorySummaryRepository) PutSummaries(userID string, summaries []summarydomain.FeedSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := make([]summarydomain.FeedSummary, len(summaries))
	copy(copied, summaries)
	for i := range copied {
		copied[i].UserID = userID
		copied[i].Position = i
	}
	r.lists[userID] = copied
	return nil
}
