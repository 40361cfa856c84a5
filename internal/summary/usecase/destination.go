package usecase

import (
	"context"

	authdomain "linkfeed-backend/internal/auth/domain"
	emaildomain "linkfeed-backend/internal/email/domain"
	emailusecase "linkfeed-backend/internal/email/usecase"
	settingsdomain "linkfeed-backend/internal/settings/domain"
	"linkfeed-backend/internal/summary/domain"
)

// Destination is one place a finished summary can be delivered to. Email is
// the only destination with a working sender today; Notion is accepted in
// settings but its sender reports ErrNotSupported, so the type system
// documents the gap instead of a runtime flag.
type Destination interface {
	Name() string
	Deliver(ctx context.Context, user *authdomain.User, settings *settingsdomain.Settings, rec *domain.FeedSummary) error
}

type EmailDestination struct {
	emailUsecase emailusecase.EmailUsecase
}

func NewEmailDestination(emailUC emailusecase.EmailUsecase) *EmailDestination {
	return &EmailDestination{emailUsecase: emailUC}
}

func (d *EmailDestination) Name() string { return "email" }

func (d *EmailDestination) Deliver(ctx context.Context, user *authdomain.User, settings *settingsdomain.Settings, rec *domain.FeedSummary) error {
	address := settings.EmailAddress
	if address == "" {
		address = user.Email
	}

	_, err := d.emailUsecase.Send(ctx, &emaildomain.EmailRequest{
		UserID:    user.ID,
		UserEmail: address,
		Summary:   rec.Summary,
		KeyTopics: rec.KeyTopics,
		Date:      rec.Date,
		PostCount: rec.PostCount,
	})
	return err
}

// NotionDestination is a stub collaborator until a Notion integration
// exists.
type NotionDestination struct{}

func NewNotionDestination() *NotionDestination { return &NotionDestination{} }

func (d *NotionDestination) Name() string { return "notion" }

func (d *NotionDestination) Deliver(ctx context.Context, user *authdomain.User, settings *settingsdomain.Settings, rec *domain.FeedSummary) error {
	return settingsdomain.ErrNotSupported
}
