// Package recruitment implements the recruitment application submission
// workflow: validate, simulate backend latency, persist, timed success reset.
package recruitment

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
	"github.com/ieee-igdtuw/chapter-core/pkg/validator"
)

const (
	formLabel      = "recruitment"
	submitErrorKey = "submit"
	submitFailed   = "Failed to submit application. Please try again."
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

// Submit validates and persists one application. Returns false with the field
// errors recorded when validation rejects the input; returns false with a
// persistence error when storage fails. Nothing is persisted on either
// failure path.
func (s *Service) Submit(ctx context.Context, in model.RecruitmentInput) (bool, error) {
	if errs := s.validator.Recruitment(in); len(errs) > 0 {
		s.track.Reject(errs)
		s.metrics.SubmissionsTotal.WithLabelValues(formLabel, "invalid").Inc()
		return false, apperrors.Validation("application failed validation")
	}

	if !s.track.Begin() {
		return false, apperrors.Validation("a submission is already in flight")
	}

	if err := workflow.SimulateLatency(ctx, s.cfg.SimulatedLatency); err != nil {
		s.track.Fail(nil)
		return false, err
	}

	record := model.RecruitmentSubmission{
		ID:          uuid.New(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Year:        in.Year,
		Branch:      in.Branch,
		Skills:      in.Skills,
		Experience:  in.Experience,
		RoleID:      in.RoleID,
		SubmittedAt: time.Now().UTC(),
		Status:      model.StatusPending,
	}

	existing, err := repository.LoadAs[model.RecruitmentSubmission](ctx, s.store, model.CollectionRecruitment)
	if err == nil {
		err = repository.SaveAs(ctx, s.store, model.CollectionRecruitment, append(existing, record))
	}
	if err != nil {
		s.track.Fail(map[string]string{submitErrorKey: submitFailed})
		s.metrics.SubmissionsTotal.WithLabelValues(formLabel, "error").Inc()
		s.logger.Error(err, "failed to persist recruitment application")
		return false, apperrors.Persistence(err)
	}

	s.track.Succeed(s.cfg.SuccessWindow)
	s.metrics.SubmissionsTotal.WithLabelValues(formLabel, "success").Inc()
	s.logger.Info("recruitment application submitted", "id", record.ID.String(), "role", record.RoleID)
	return true, nil
}

// Validate exposes the rule set without submitting, for inline field checks.
func (s *Service) Validate(in model.RecruitmentInput) map[string]string {
	return s.validator.Recruitment(in)
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

// Submissions lists all persisted applications, oldest first.
func (s *Service) Submissions(ctx context.Context) ([]model.RecruitmentSubmission, error) {
	return repository.LoadAs[model.RecruitmentSubmission](ctx, s.store, model.CollectionRecruitment)
}
