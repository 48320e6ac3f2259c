// Package qrcode builds the canonical event payload encoded into QR codes
// and keeps an append-only record of every generation.
package qrcode

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ieee-igdtuw/chapter-core/internal/model"
	"github.com/ieee-igdtuw/chapter-core/internal/repository"
	apperrors "github.com/ieee-igdtuw/chapter-core/pkg/errors"
	"github.com/ieee-igdtuw/chapter-core/pkg/logger"
	"github.com/ieee-igdtuw/chapter-core/pkg/metrics"
)

const (
	payloadType         = "event"
	defaultTitle        = "Event"
	defaultLocation     = "TBD"
	defaultRegistration = "#"
)

type Service struct {
	store     repository.CollectionStore
	organizer string
	logger    *logger.Logger
	metrics   *metrics.Metrics

	mu   sync.Mutex
	last string
}

func NewService(store repository.CollectionStore, organizer string, log *logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:     store,
		organizer: organizer,
		logger:    log,
		metrics:   m,
	}
}

// Generate builds the canonical payload for draft, serializes it and appends
// a generation record. The returned string is the exact QR-encoded payload:
// struct field order fixes the serialization, so equal drafts produce equal
// strings. On failure nothing is persisted and the error is non-fatal.
func (s *Service) Generate(ctx context.Context, draft model.EventDraft) (string, error) {
	payload := s.canonicalize(draft)

	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error(err, "failed to serialize event payload", "event_id", payload.ID)
		return "", apperrors.Internal(err)
	}
	encoded := string(data)

	records, err := repository.LoadAs[model.QRCode](ctx, s.store, model.CollectionQRCodes)
	if err == nil {
		records = append(records, model.QRCode{
			ID:          payload.ID,
			EventData:   payload,
			QRData:      encoded,
			GeneratedAt: time.Now().UTC(),
		})
		err = repository.SaveAs(ctx, s.store, model.CollectionQRCodes, records)
	}
	if err != nil {
		s.logger.Error(err, "failed to persist QR generation", "event_id", payload.ID)
		return "", apperrors.Persistence(err)
	}

	s.mu.Lock()
	s.last = encoded
	s.mu.Unlock()

	s.metrics.QRGenerationsTotal.Inc()
	return encoded, nil
}

// canonicalize applies the defaulting rules for absent draft fields.
func (s *Service) canonicalize(draft model.EventDraft) model.EventPayload {
	payload := model.EventPayload{
		Type:         payloadType,
		ID:           draft.ID,
		Title:        draft.Title,
		Location:     draft.Location,
		Description:  draft.Description,
		Organizer:    s.organizer,
		Registration: draft.RegistrationLink,
	}

	if payload.ID == "" {
		payload.ID = uuid.New().String()
	}
	if payload.Title == "" {
		payload.Title = defaultTitle
	}
	if draft.Date.IsZero() {
		payload.Date = time.Now().UTC().Format(time.RFC3339)
	} else {
		payload.Date = draft.Date.UTC().Format(time.RFC3339)
	}
	if payload.Location == "" {
		payload.Location = defaultLocation
	}
	if payload.Registration == "" {
		payload.Registration = defaultRegistration
	}

	return payload
}

// LastGenerated returns the most recent payload string, empty if none or
// cleared.
func (s *Service) LastGenerated() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Clear drops the last generated payload without touching persisted records.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = ""
}

// Generations lists all persisted generation records, oldest first.
func (s *Service) Generations(ctx context.Context) ([]model.QRCode, error) {
	return repository.LoadAs[model.QRCode](ctx, s.store, model.CollectionQRCodes)
}
