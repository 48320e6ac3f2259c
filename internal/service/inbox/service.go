// Package inbox holds the in-memory notification inbox. The seed list is
// injected at construction; nothing here touches the collection store.
package inbox

import (
	"sync"

	"github.com/ieee-igdtuw/chapter-core/internal/model"
)

type Service struct {
	mu            sync.Mutex
	notifications []model.Notification
}

// NewService builds an inbox from the given seed. The slice is copied; the
// caller's seed is never mutated.
func NewService(seed []model.Notification) *Service {
	notifications := make([]model.Notification, len(seed))
	copy(notifications, seed)
	return &Service{notifications: notifications}
}

// DefaultSeed returns the stock inbox contents shown to new sessions.
func DefaultSeed() []model.Notification {
	return []model.Notification{
		{ID: "1", Title: "Registration Confirmed", Message: "You're registered for Quantum Computing Workshop", Time: "2 min ago", Read: false, Priority: model.PriorityHigh, Type: model.NotificationEvent},
		{ID: "2", Title: "New Role Opening", Message: "Technical Lead position is now open", Time: "1 hr ago", Read: false, Priority: model.PriorityMedium, Type: model.NotificationRecruitment},
		{ID: "3", Title: "Event Reminder", Message: "AI/ML Hackathon starts in 3 days", Time: "3 hrs ago", Read: true, Priority: model.PriorityMedium, Type: model.NotificationEvent},
		{ID: "4", Title: "Membership Renewed", Message: "Your IEEE membership is active until Dec 2026", Time: "1 day ago", Read: true, Priority: model.PriorityLow, Type: model.NotificationSystem},
		{ID: "5", Title: "New Gallery Photos", Message: "12 new photos from Women in Tech Summit", Time: "2 days ago", Read: true, Priority: model.PriorityLow, Type: model.NotificationSystem},
	}
}

// Notifications returns a snapshot of the inbox.
func (s *Service) Notifications() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// UnreadCount counts entries not yet marked read.
func (s *Service) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead marks one entry read. Unknown ids are a no-op.
func (s *Service) MarkRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return
		}
	}
}

// MarkAllRead marks every entry read.
func (s *Service) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}
