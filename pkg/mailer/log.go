package mailer

import "log"

// LogSender simulates delivery by logging a preview of the message. It is
// used when no SMTP transport is configured and never fails.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(to, subject, htmlBody, textBody string) error {
	log.Printf("[Mailer] Email would be sent: to=%s subject=%q html=%s text=%s",
		to, subject, preview(htmlBody), preview(textBody))
	return nil
}

func preview(body string) string {
	if len(body) > 200 {
		return body[:200] + "..."
	}
	return body
}
