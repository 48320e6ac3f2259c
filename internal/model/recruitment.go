package model

import (
	"time"

	"github.com/google/uuid"
)

// StatusPending is the fixed initial status of every recruitment submission.
// No other status is ever written by this layer.
const StatusPending = "pending"

// RecruitmentInput holds the raw form values of a recruitment application.
// Validation tags drive pkg/validator; field names surfaced in error maps come
// from the json tags.
type RecruitmentInput struct {
	Name       string   `json:"name" validate:"notblank"`
	Email      string   `json:"email" validate:"notblank,rfclite"`
	Phone      string   `json:"phone" validate:"notblank,phone10"`
	Year       string   `json:"year" validate:"required"`
	Branch     string   `json:"branch" validate:"required"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience" validate:"notblank,min=50"`
	RoleID     string   `json:"roleId" validate:"required"`
}

// RecruitmentSubmission is a persisted recruitment application. Immutable once
// created; the layer exposes no update or delete for it.
type RecruitmentSubmission struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Year        string    `json:"year"`
	Branch      string    `json:"branch"`
	Skills      []string  `json:"skills"`
	Experience  string    `json:"experience"`
	RoleID      string    `json:"roleId"`
	SubmittedAt time.Time `json:"submittedAt"`
	Status      string    `json:"status"`
}
