package feedback_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieee-igdtuw/chapter-core/internal/config"
	"github.com/ieee-igdtuw/chapter-core/internal/model"
	"github.com/ieee-igdtuw/chapter-core/internal/repository/sqlite"
	"github.com/ieee-igdtuw/chapter-core/internal/service/feedback"
	"github.com/ieee-igdtuw/chapter-core/internal/service/workflow"
	apperrors "github.com/ieee-igdtuw/chapter-core/pkg/errors"
	"github.com/ieee-igdtuw/chapter-core/pkg/logger"
	"github.com/ieee-igdtuw/chapter-core/pkg/metrics"
	"github.com/ieee-igdtuw/chapter-core/pkg/validator"
)

func newService(t *testing.T) (*feedback.Service, *sqlite.Store) {
	t.Helper()
	storeMetrics := metrics.NewMetricsWithRegistry(prometheus.NewRegistry(), "chapter", "store")
	store, err := sqlite.New(":memory:", logger.Discard(), storeMetrics)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := metrics.NewMetricsWithRegistry(prometheus.NewRegistry(), "chapter", "test")
	cfg := config.FormConfig{SimulatedLatency: 0, SuccessWindow: 50 * time.Millisecond}
	return feedback.NewService(store, validator.New(), cfg, logger.Discard(), m), store
}

func validInput() model.FeedbackInput {
	return model.FeedbackInput{
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		Rating:   4,
		Category: "events",
		Message:  "The mentorship circle was helpful this semester.",
	}
}

func TestSubmitComputesSentiment(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	in := validInput()
	in.Message = "The speaker series was great and the venue was wonderful"
	// A stale live-preview value must be overwritten at submission time.
	in.Sentiment = model.SentimentNegative

	ok, err := svc.Submit(ctx, in)
	require.NoError(t, err)
	require.True(t, ok)

	subs, err := svc.Submissions(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, model.SentimentPositive, subs[0].Sentiment)
	assert.Equal(t, 4, subs[0].Rating)
}

func TestSubmitSuccessWindowResets(t *testing.T) {
	svc, _ := newService(t)

	ok, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, workflow.StateSucceeded, svc.State())

	assert.Eventually(t, func() bool {
		return svc.State() == workflow.StateIdle
	}, time.Second, 10*time.Millisecond)
}

func TestSubmitMessageTooShort(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	in := validInput()
	in.Message = "nine char"

	ok, err := svc.Submit(ctx, in)
	assert.False(t, ok)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrValidation))
	assert.Equal(t, "Message must be at least 10 characters", svc.Errors()["message"])

	subs, err := svc.Submissions(ctx)
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestPreviewMatchesSubmission(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	in := validInput()
	in.Message = "Honestly the scheduling was terrible and the food was awful"

	preview := svc.Preview(in.Message)

	ok, err := svc.Submit(ctx, in)
	require.NoError(t, err)
	require.True(t, ok)

	subs, err := svc.Submissions(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, preview, subs[0].Sentiment)
	assert.Equal(t, model.SentimentNegative, subs[0].Sentiment)
}

type failingStore struct{}

func (failingStore) Load(context.Context, model.Collection) ([]byte, error) {
	return []byte("[]"), nil
}

func (failingStore) Save(context.Context, model.Collection, []byte) error {
	return errors.New("quota exceeded")
}

func TestSubmitPersistenceFailure(t *testing.T) {
	m := metrics.NewMetricsWithRegistry(prometheus.NewRegistry(), "chapter", "test")
	cfg := config.FormConfig{SimulatedLatency: 0, SuccessWindow: time.Second}
	svc := feedback.NewService(failingStore{}, validator.New(), cfg, logger.Discard(), m)

	ok, err := svc.Submit(context.Background(), validInput())
	assert.False(t, ok)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrPersistence))
	assert.Equal(t, "Failed to submit feedback. Please try again.", svc.Errors()["submit"])
	assert.Equal(t, workflow.StateIdle, svc.State())
}
