// Package reminder manages event reminders: permission state, lead-time
// computation, one-shot delivery timers and the persisted reminder
// collection. Timers are memory-resident; a recovery scan at construction
// re-arms still-future reminders, but deliveries whose timer dies with the
// process are lost even though the record persists.
package reminder

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ieee-igdtuw/chapter-core/internal/config"
	"github.com/ieee-igdtuw/chapter-core/internal/model"
	"github.com/ieee-igdtuw/chapter-core/internal/repository"
	apperrors "github.com/ieee-igdtuw/chapter-core/pkg/errors"
	"github.com/ieee-igdtuw/chapter-core/pkg/logger"
	"github.com/ieee-igdtuw/chapter-core/pkg/metrics"
	"github.com/ieee-igdtuw/chapter-core/pkg/notifier"
)

type Service struct {
	store    repository.CollectionStore
	notifier notifier.Notifier
	cfg      config.RemindersConfig
	logger   *logger.Logger
	metrics  *metrics.Metrics

	mu         sync.Mutex
	permission model.Permission
	reminders  []model.Reminder
	timers     map[uuid.UUID]*time.Timer
}

// NewService loads the reminder collection and runs the recovery scan: when
// the host already reports granted, every still-future reminder is re-armed.
// Past-due records are kept; the UI reports them as past due.
func NewService(store repository.CollectionStore, n notifier.Notifier, cfg config.RemindersConfig, log *logger.Logger, m *metrics.Metrics) (*Service, error) {
	reminders, err := repository.LoadAs[model.Reminder](context.Background(), store, model.CollectionReminders)
	if err != nil {
		return nil, fmt.Errorf("failed to load reminders: %w", err)
	}

	s := &Service{
		store:      store,
		notifier:   n,
		cfg:        cfg,
		logger:     log,
		metrics:    m,
		permission: model.PermissionUnsupported,
		reminders:  reminders,
		timers:     make(map[uuid.UUID]*time.Timer),
	}

	if n.Supported() {
		s.permission = n.Permission()
	}

	s.mu.Lock()
	s.rearmLocked()
	s.mu.Unlock()

	return s, nil
}

// Supported reports whether the host exposes both a notification surface and
// a background worker. When false, scheduling still persists records so the
// UI can show active reminders; no delivery is ever arranged.
func (s *Service) Supported() bool {
	return s.notifier.Supported()
}

// Permission returns the cached permission state.
func (s *Service) Permission() model.Permission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permission
}

// RequestPermission prompts the host. Any host-level failure fails closed to
// denied. On transition to granted, still-future reminders persisted while
// permission was absent get their delivery armed.
func (s *Service) RequestPermission(ctx context.Context) (model.Permission, error) {
	if !s.notifier.Supported() {
		return model.PermissionUnsupported, nil
	}

	perm, err := s.notifier.RequestPermission(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.permission = model.PermissionDenied
		s.logger.Error(err, "notification permission request failed")
		return model.PermissionDenied, apperrors.PermissionDenied(err)
	}

	s.permission = perm
	if perm == model.PermissionGranted {
		s.rearmLocked()
	}
	return perm, nil
}

// Schedule creates a reminder firing lead units before the event. The fire
// time must be strictly in the future, otherwise the request is rejected and
// nothing is persisted. The record is persisted first; a delivery timer is
// armed only when the host is supported and permission is granted.
func (s *Service) Schedule(ctx context.Context, draft model.EventDraft, lead int, unit model.LeadUnit) (*model.Reminder, error) {
	reminderDate := draft.Date.Add(-unit.Duration(lead))
	if !reminderDate.After(time.Now()) {
		s.metrics.RemindersRejected.Inc()
		return nil, apperrors.SchedulingRejected("reminder time must be in the future")
	}

	record := model.Reminder{
		ID:           uuid.New(),
		Title:        fmt.Sprintf("Reminder: %s", draft.Title),
		Description:  strings.TrimSpace(fmt.Sprintf("Event starts in %d %s! %s", lead, unit, draft.Description)),
		EventDate:    draft.Date,
		ReminderDate: reminderDate,
		IsScheduled:  true,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(append([]model.Reminder(nil), s.reminders...), record)
	if err := repository.SaveAs(ctx, s.store, model.CollectionReminders, next); err != nil {
		// In-memory state stays at storage truth: the record is dropped.
		s.logger.Error(err, "failed to persist reminder", "reminder_id", record.ID.String())
		return nil, apperrors.Persistence(err)
	}
	s.reminders = next

	if s.notifier.Supported() && s.permission == model.PermissionGranted {
		s.armLocked(record)
	}

	s.metrics.RemindersScheduled.Inc()
	s.logger.Info("reminder scheduled",
		"reminder_id", record.ID.String(),
		"fires_at", record.ReminderDate.Format(time.RFC3339))
	return &record, nil
}

// Cancel removes one reminder and stops its timer if armed. Cancelling an
// unknown id is a no-op. A timer armed by a previous process cannot be
// reached and is not our concern here; it died with that process.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Reminder, 0, len(s.reminders))
	found := false
	for _, r := range s.reminders {
		if r.ID == id {
			found = true
			continue
		}
		next = append(next, r)
	}
	if !found {
		return nil
	}

	if err := repository.SaveAs(ctx, s.store, model.CollectionReminders, next); err != nil {
		s.logger.Error(err, "failed to persist reminder cancellation", "reminder_id", id.String())
		return apperrors.Persistence(err)
	}
	s.reminders = next
	s.stopTimerLocked(id)
	s.metrics.RemindersCancelled.Inc()
	return nil
}

// CancelAll clears the whole collection and stops every armed timer.
func (s *Service) CancelAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := repository.SaveAs(ctx, s.store, model.CollectionReminders, []model.Reminder{}); err != nil {
		s.logger.Error(err, "failed to clear reminders")
		return apperrors.Persistence(err)
	}

	cancelled := len(s.reminders)
	s.reminders = nil
	for id := range s.timers {
		s.stopTimerLocked(id)
	}
	for i := 0; i < cancelled; i++ {
		s.metrics.RemindersCancelled.Inc()
	}
	return nil
}

// Reminders returns a snapshot of the current collection.
func (s *Service) Reminders() []model.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// Close stops all armed timers without touching storage. Records keep
// isScheduled true; a later construction's recovery scan picks them up.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.timers {
		s.stopTimerLocked(id)
	}
}

// TimeUntil renders the time left before a reminder fires, in the coarsest
// non-zero unit.
func TimeUntil(r model.Reminder) string {
	diff := time.Until(r.ReminderDate)
	if diff <= 0 {
		return "Past due"
	}

	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24
	minutes := int(diff.Minutes()) % 60

	switch {
	case days > 0:
		return pluralize(days, "day")
	case hours > 0:
		return pluralize(hours, "hour")
	default:
		return pluralize(minutes, "minute")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// rearmLocked arms every still-future reminder that has no timer. Only called
// when permission is granted or being granted.
func (s *Service) rearmLocked() {
	if !s.notifier.Supported() || s.permission != model.PermissionGranted {
		return
	}
	for _, r := range s.reminders {
		if _, armed := s.timers[r.ID]; armed {
			continue
		}
		s.armLocked(r)
	}
}

func (s *Service) armLocked(r model.Reminder) {
	delay := time.Until(r.ReminderDate)
	if delay <= 0 {
		return
	}
	s.timers[r.ID] = time.AfterFunc(delay, func() {
		s.deliver(r)
	})
}

func (s *Service) deliver(r model.Reminder) {
	payload := notifier.Payload{
		Title:              r.Title,
		Body:               r.Description,
		Icon:               s.cfg.Icon,
		Badge:              s.cfg.Badge,
		Tag:                r.ID.String(),
		RequireInteraction: true,
	}

	if err := s.notifier.Deliver(context.Background(), payload); err != nil {
		s.logger.Error(err, "reminder delivery failed", "reminder_id", r.ID.String())
	} else {
		s.metrics.RemindersDelivered.Inc()
	}

	s.mu.Lock()
	delete(s.timers, r.ID)
	s.mu.Unlock()
}

func (s *Service) stopTimerLocked(id uuid.UUID) {
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}
