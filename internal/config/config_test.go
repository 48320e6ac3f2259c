package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1500*time.Millisecond, cfg.Forms.Recruitment.SimulatedLatency)
	assert.Equal(t, 5*time.Second, cfg.Forms.Recruitment.SuccessWindow)
	assert.Equal(t, 1000*time.Millisecond, cfg.Forms.Feedback.SimulatedLatency)
	assert.Equal(t, 3*time.Second, cfg.Forms.Feedback.SuccessWindow)
	assert.Equal(t, 15, cfg.Reminders.DefaultLead)
	assert.Equal(t, "minutes", cfg.Reminders.DefaultLeadUnit)
	assert.Equal(t, "IEEE IGDTUW", cfg.Chapter.Organizer)
	assert.NoError(t, cfg.validate())
}

func TestValidateSocialLinks(t *testing.T) {
	cfg := Default()
	cfg.Chapter.SocialLinks["broken"] = "not a url"
	assert.Error(t, cfg.validate())
}

func TestValidateSuccessWindows(t *testing.T) {
	cfg := Default()
	cfg.Forms.Feedback.SuccessWindow = 0
	assert.Error(t, cfg.validate())
}
