package model

import "time"

// EventDraft is the caller-supplied description of an event, fed to the QR
// generator and the reminder scheduler. Zero values trigger the defaulting
// rules applied by the QR generator.
type EventDraft struct {
	ID               string
	Title            string
	Date             time.Time
	Location         string
	Description      string
	RegistrationLink string
}

// EventPayload is the canonical event object encoded into a QR code. Field
// order is fixed: the serialized string is the QR payload, so two payloads
// with equal fields must serialize identically.
type EventPayload struct {
	Type         string `json:"type"`
	ID           string `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Organizer    string `json:"organizer"`
	Registration string `json:"registration"`
}

// QRCode is a persisted generation record. Append-only.
type QRCode struct {
	ID          string       `json:"id"`
	EventData   EventPayload `json:"eventData"`
	QRData      string       `json:"qrData"`
	GeneratedAt time.Time    `json:"generatedAt"`
}
