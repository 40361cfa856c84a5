package mailer

// Sender delivers a rendered email. Rendering correctness and delivery
// success are deliberately separate concerns; callers decide whether a
// delivery failure is fatal.
type Sender interface {
	Send(to, subject, htmlBody, textBody string) error
}
