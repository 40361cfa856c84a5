package domain

import (
	"errors"
	"time"
)

// EmailRequest is the input to the email composition service. Pure value,
// not persisted.
type EmailRequest struct {
	UserID    string   `json:"userId"`
	UserEmail string   `json:"userEmail"`
	Summary   string   `json:"summary"`
	KeyTopics []string `json:"keyTopics"`
	Date      string   `json:"date"`
	PostCount int      `json:"postCount"`
}

// SendResult acknowledges a delivery attempt.
type SendResult struct {
	MessageID string    `json:"messageId"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrInvalidInput marks a request with missing required fields or an
// unparseable date.
var ErrInvalidInput = errors.New("missing required fields")
