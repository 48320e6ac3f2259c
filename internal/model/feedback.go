package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackInput holds the raw form values of a feedback entry. The Sentiment
// field may carry a live-preview value from the caller; the workflow always
// recomputes it from Message at submission time.
type FeedbackInput struct {
	Name      string    `json:"name" validate:"notblank"`
	Email     string    `json:"email" validate:"notblank,rfclite"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Category  string    `json:"category" validate:"required"`
	Message   string    `json:"message" validate:"notblank,min=10"`
	Sentiment Sentiment `json:"sentiment"`
}

// FeedbackSubmission is a persisted feedback entry. Immutable once created.
type FeedbackSubmission struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Rating      int       `json:"rating"`
	Category    string    `json:"category"`
	Message     string    `json:"message"`
	Sentiment   Sentiment `json:"sentiment"`
	SubmittedAt time.Time `json:"submittedAt"`
}
