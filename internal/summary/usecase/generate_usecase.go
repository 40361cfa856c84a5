package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	authdomain "linkfeed-backend/internal/auth/domain"
	settingsdomain "linkfeed-backend/internal/settings/domain"
	settingsrepo "linkfeed-backend/internal/settings/repository"
	"linkfeed-backend/internal/summary/domain"
	"linkfeed-backend/internal/summary/repository"
)

// displayLimit caps how many records the dashboard shows. All generated
// records are written; only reads are capped.
const displayLimit = 10

// generateState names the orchestrator's phases. Failure at the email stage
// is structurally incapable of undoing the persisted summary: the record is
// written before stateEmailPending is entered.
type generateState string

const (
	stateIdle         generateState = "idle"
	stateGenerating   generateState = "generating"
	statePersisted    generateState = "persisted"
	stateEmailPending generateState = "email_pending"
	stateSettled      generateState = "settled"
)

// FeedSource supplies the post batch for one generation run.
type FeedSource interface {
	FetchPosts(ctx context.Context, userID string) ([]domain.FeedPost, error)
}

// GenerateUsecase runs the full dashboard flow: fetch posts, summarize,
// persist, deliver to enabled destinations.
type GenerateUsecase interface {
	Generate(ctx context.Context, user *authdomain.User) (*domain.FeedSummary, error)
	ListSummaries(userID string) ([]domain.FeedSummary, error)
}

type generateUsecase struct {
	feed         FeedSource
	summarizer   SummarizeUsecase
	summaryRepo  repository.SummaryRepository
	settingsRepo settingsrepo.SettingsRepository
	email        Destination
	notion       Destination
}

func NewGenerateUsecase(
	feed FeedSource,
	summarizer SummarizeUsecase,
	summaryRepo repository.SummaryRepository,
	settingsRepo settingsrepo.SettingsRepository,
	email Destination,
	notion Destination,
) GenerateUsecase {
	return &generateUsecase{
		feed:         feed,
		summarizer:   summarizer,
		summaryRepo:  summaryRepo,
		settingsRepo: settingsRepo,
		email:        email,
		notion:       notion,
	}
}

func (u *generateUsecase) Generate(ctx context.Context, user *authdomain.User) (*domain.FeedSummary, error) {
	settings, err := u.settingsRepo.Get(user.ID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = settingsdomain.Defaults(user.ID)
	}

	u.transition(user.ID, stateIdle, stateGenerating)
	posts, err := u.feed.FetchPosts(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	result, err := u.summarizer.Summarize(ctx, user.ID, posts, settings.SummaryLength)
	if err != nil {
		// No record is created; the caller returns to idle.
		log.Printf("[Generate] Summarization failed for user %s: %v", user.ID, err)
		return nil, err
	}

	rec := domain.FeedSummary{
		ID:            uuid.New().String(),
		UserID:        user.ID,
		Date:          time.Now().Format("2006-01-02"),
		Summary:       result.Summary,
		PostCount:     result.PostCount,
		KeyTopics:     result.KeyTopics,
		CreatedAt:     time.Now(),
		SentToEmail:   false,
		SavedToNotion: false,
	}

	// Prepend through whole-list read-modify-write (last writer wins).
	list, err := u.summaryRepo.GetSummaries(user.ID)
	if err != nil {
		return nil, err
	}
	list = append([]domain.FeedSummary{rec}, list...)
	if err := u.summaryRepo.PutSummaries(user.ID, list); err != nil {
		return nil, err
	}
	u.transition(user.ID, stateGenerating, statePersisted)

	// Delivery failures are non-fatal from here on.
	if settings.EmailEnabled {
		u.transition(user.ID, statePersisted, stateEmailPending)
		if err := u.email.Deliver(ctx, user, settings, &rec); err != nil {
			log.Printf("[Generate] Failed to send email for user %s: %v", user.ID, err)
		} else {
			rec.SentToEmail = true
			u.rewriteRecord(user.ID, rec)
		}
	}

	if settings.NotionEnabled {
		if err := u.notion.Deliver(ctx, user, settings, &rec); err != nil {
			log.Printf("[Generate] Notion delivery unavailable for user %s: %v", user.ID, err)
		} else {
			rec.SavedToNotion = true
			u.rewriteRecord(user.ID, rec)
		}
	}

	u.transition(user.ID, stateEmailPending, stateSettled)

	return &rec, nil
}

func (u *generateUsecase) transition(userID string, from, to generateState) {
	log.Printf("[Generate] user %s: %s -> %s", userID, from, to)
}

// rewriteRecord updates one record in place and rewrites the whole
// collection.
func (u *generateUsecase) rewriteRecord(userID string, rec domain.FeedSummary) {
	list, err := u.summaryRepo.GetSummaries(userID)
	if err != nil {
		log.Printf("[Generate] Failed to reread summaries for user %s: %v", userID, err)
		return
	}
	for i := range list {
		if list[i].ID == rec.ID {
			list[i] = rec
		}
	}
	if err := u.summaryRepo.PutSummaries(userID, list); err != nil {
		log.Printf("[Generate] Failed to rewrite summaries for user %s: %v", userID, err)
	}
}

func (u *generateUsecase) ListSummaries(userID string) ([]domain.FeedSummary, error) {
	list, err := u.summaryRepo.GetSummaries(userID)
	if err != nil {
		return nil, err
	}
	if len(list) > displayLimit {
		list = list[:displayLimit]
	}
	return list, nil
}
