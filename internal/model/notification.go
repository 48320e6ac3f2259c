package model

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
)

type NotificationType string

const (
	NotificationEvent       NotificationType = "event"
	NotificationSystem      NotificationType = "system"
	NotificationRecruitment NotificationType = "recruitment"
)

// Notification is one inbox entry. The inbox is in-memory only and is never
// written to the collection store.
type Notification struct {
	ID       string               `json:"id"`
	Title    string               `json:"title"`
	Message  string               `json:"message"`
	Time     string               `json:"time"`
	Read     bool                 `json:"read"`
	Priority NotificationPriority `json:"priority"`
	Type     NotificationType     `json:"type"`
}
