package model

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a persisted reminder record. Field values are fixed after
// creation; the record is removed by cancel operations, never mutated.
// IsScheduled reflects that a reminder was accepted, not that a delivery timer
// is currently armed: timers do not survive a process restart.
type Reminder struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	EventDate    time.Time `json:"eventDate"`
	ReminderDate time.Time `json:"reminderDate"`
	IsScheduled  bool      `json:"isScheduled"`
}
