// Package feedback implements the feedback submission workflow. The message
// sentiment is classified at submission time with the same algorithm callers
// use for live preview, so both agree for identical input.
package feedback

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ieee-igdtuw/chapter-core/internal/config"
	"github.com/ieee-igdtuw/chapter-core/internal/model"
	"github.com/ieee-igdtuw/chapter-core/internal/repository"
	"github.com/ieee-igdtuw/chapter-core/internal/service/workflow"
	apperrors "github.com/ieee-igdtuw/chapter-core/pkg/errors"
	"github.com/ieee-igdtuw/chapter-core/pkg/logger"
	"github.com/ieee-igdtuw/chapter-core/pkg/metrics"
	"github.com/ieee-igdtuw/chapter-core/pkg/sentiment"
	"github.com/ieee-igdtuw/chapter-core/pkg/validator"
)

const (
	formLabel      = "feedback"
	submitErrorKey = "submit"
	submitFailed   = "Failed to submit feedback. Please try again."
)

type Service struct {
	store     repository.CollectionStore
	validator *validator.FormValidator
	cfg       config.FormConfig
	logger    *logger.Logger
	metrics   *metrics.Metrics
	track     *workflow.Tracker
}

func NewService(store repository.CollectionStore, v *validator.FormValidator, cfg config.FormConfig, log *logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:     store,
		validator: v,
		cfg:       cfg,
		logger:    log,
		metrics:   m,
		track:     workflow.NewTracker(),
	}
}

// Submit validates and persists one feedback entry. Whatever sentiment the
// caller staged from live preview is overwritten with the value classified
// from the final message text.
func (s *Service) Submit(ctx context.Context, in model.FeedbackInput) (bool, error) {
	if errs := s.validator.Feedback(in); len(errs) > 0 {
		s.track.Reject(errs)
		s.metrics.SubmissionsTotal.WithLabelValues(formLabel, "invalid").Inc()
		return false, apperrors.Validation("feedback failed validation")
	}

	if !s.track.Begin() {
		return false, apperrors.Validation("a submission is already in flight")
	}

	if err := workflow.SimulateLatency(ctx, s.cfg.SimulatedLatency); err != nil {
		s.track.Fail(nil)
		return false, err
	}

	record := model.FeedbackSubmission{
		ID:          uuid.New(),
		Name:        in.Name,
		Email:       in.Email,
		Rating:      in.Rating,
		Category:    in.Category,
		Message:     in.Message,
		Sentiment:   sentiment.Classify(in.Message),
		SubmittedAt: time.Now().UTC(),
	}

	existing, err := repository.LoadAs[model.FeedbackSubmission](ctx, s.store, model.CollectionFeedback)
	if err == nil {
		err = repository.SaveAs(ctx, s.store, model.CollectionFeedback, append(existing, record))
	}
	if err != nil {
		s.track.Fail(map[string]string{submitErrorKey: submitFailed})
		s.metrics.SubmissionsTotal.WithLabelValues(formLabel, "error").Inc()
		s.logger.Error(err, "failed to persist feedback")
		return false, apperrors.Persistence(err)
	}

	s.track.Succeed(s.cfg.SuccessWindow)
	s.metrics.SubmissionsTotal.WithLabelValues(formLabel, "success").Inc()
	s.logger.Info("feedback submitted", "id", record.ID.String(), "sentiment", string(record.Sentiment))
	return true, nil
}

// Validate exposes the rule set without submitting, for inline field checks.
func (s *Service) Validate(in model.FeedbackInput) map[string]string {
	return s.validator.Feedback(in)
}

// Preview classifies message text for live display while the user types.
func (s *Service) Preview(message string) model.Sentiment {
	return sentiment.Classify(message)
}

func (s *Service) State() workflow.State {
	return s.track.State()
}

func (s *Service) Errors() map[string]string {
	return s.track.Errors()
}

func (s *Service) Reset() {
	s.track.Reset()
}

// Submissions lists all persisted feedback entries, oldest first.
func (s *Service) Submissions(ctx context.Context) ([]model.FeedbackSubmission, error) {
	return repository.LoadAs[model.FeedbackSubmission](ctx, s.store, model.CollectionFeedback)
}
