package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"linkfeed-backend/internal/email/domain"
	"linkfeed-backend/pkg/mailer"
)

// EmailUsecase composes the summary email (HTML and plain text) and hands it
// to the configured sender.
type EmailUsecase interface {
	Send(ctx context.Context, req *domain.EmailRequest) (*domain.SendResult, error)
}

type emailUsecase struct {
	sender       mailer.Sender
	dashboardURL string
	tmpl         *template.Template
}

func NewEmailUsecase(sender mailer.Sender, dashboardURL string) (EmailUsecase, error) {
	tmpl, err := template.New("summary-email").Parse(emailTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %w", err)
	}
	return &emailUsecase{
		sender:       sender,
		dashboardURL: dashboardURL,
		tmpl:         tmpl,
	}, nil
}

// templateData is the rendering input for both the HTML and text variants.
type templateData struct {
	FormattedDate string
	PostCount     int
	Paragraphs    []string
	Topics        []string
	DashboardURL  string
	GeneratedOn   string
}

func (u *emailUsecase) Send(ctx context.Context, req *domain.EmailRequest) (*domain.SendResult, error) {
	if req.UserID == "" || req.UserEmail == "" || req.Summary == "" {
		return nil, domain.ErrInvalidInput
	}

	formattedDate, err := formatLongDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: unparseable date %q", domain.ErrInvalidInput, req.Date)
	}

	data := templateData{
		FormattedDate: formattedDate,
		PostCount:     req.PostCount,
		Paragraphs:    strings.Split(req.Summary, "\n"),
		Topics:        req.KeyTopics,
		DashboardURL:  u.dashboardURL,
		GeneratedOn:   time.Now().Format("1/2/2006"),
	}

	var htmlBuf bytes.Buffer
	if err := u.tmpl.Execute(&htmlBuf, data); err != nil {
		return nil, fmt.Errorf("failed to render email: %w", err)
	}
	textBody := buildPlainText(req.Summary, data)

	subject := "LinkedIn Feed Summary - " + formattedDate

	if err := u.sender.Send(req.UserEmail, subject, htmlBuf.String(), textBody); err != nil {
		return nil, err
	}

	result := &domain.SendResult{
		MessageID: fmt.Sprintf("msg_%d", time.Now().UnixMilli()),
		To:        req.UserEmail,
		Subject:   subject,
		Timestamp: time.Now(),
	}
	log.Printf("[Email] Sent summary email to %s (message %s)", req.UserEmail, result.MessageID)
	return result, nil
}

// formatLongDate renders a calendar day as a long human-readable date,
// e.g. "Monday, January 1, 2024".
func formatLongDate(date string) (string, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("Monday, January 2, 2006"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date format")
}

// buildPlainText renders the same semantic content as the HTML variant with
// line-based formatting and no markup.
func buildPlainText(summary string, data templateData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("LinkedIn Feed Summary - %s\n\n", data.FormattedDate))

	buf.WriteString("DAILY SUMMARY\n")
	buf.WriteString(summary)
	buf.WriteString("\n\n")

	if len(data.Topics) > 0 {
		buf.WriteString("KEY TOPICS\n")
		for _, topic := range data.Topics {
			buf.WriteString(fmt.Sprintf("- %s\n", topic))
		}
		buf.WriteString("\n")
	}

	buf.WriteString("STATISTICS\n")
	buf.WriteString(fmt.Sprintf("- Posts Analyzed: %d\n", data.PostCount))
	buf.WriteString(fmt.Sprintf("- Key Topics: %d\n", len(data.Topics)))
	buf.WriteString("\n---\n")
	buf.WriteString("LinkedIn Feed Summarizer\n")
	buf.WriteString(fmt.Sprintf("Powered by AI. Generated on %s\n", data.GeneratedOn))
	buf.WriteString(fmt.Sprintf("Dashboard: %s\n", data.DashboardURL))

	return buf.String()
}
