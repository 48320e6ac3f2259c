package model

import "time"

// Collection is the logical name of a persisted record collection. The four
// names are fixed; adding a collection means adding a constant here.
type Collection string

const (
	CollectionRecruitment Collection = "ieee_recruitment_submissions"
	CollectionFeedback    Collection = "ieee_feedback_submissions"
	CollectionReminders   Collection = "ieee_reminders"
	CollectionQRCodes     Collection = "ieee_qr_codes"
)

// Sentiment is the classified tone of a feedback message.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Permission mirrors the host notification permission state.
type Permission string

const (
	PermissionUnsupported Permission = "unsupported"
	PermissionDefault     Permission = "default"
	PermissionGranted     Permission = "granted"
	PermissionDenied      Permission = "denied"
)

// LeadUnit is the unit of a reminder lead time.
type LeadUnit string

const (
	LeadMinutes LeadUnit = "minutes"
	LeadHours   LeadUnit = "hours"
	LeadDays    LeadUnit = "days"
)

// Duration converts a lead time value in this unit to a time.Duration.
// Unknown units are treated as minutes.
func (u LeadUnit) Duration(value int) time.Duration {
	switch u {
	case LeadHours:
		return time.Duration(value) * time.Hour
	case LeadDays:
		return time.Duration(value) * 24 * time.Hour
	default:
		return time.Duration(value) * time.Minute
	}
}
