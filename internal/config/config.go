package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Store     StoreConfig     `mapstructure:"store"`
	Forms     FormsConfig     `mapstructure:"forms"`
	Reminders RemindersConfig `mapstructure:"reminders"`
	Chapter   ChapterConfig   `mapstructure:"chapter"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type FormsConfig struct {
	Recruitment FormConfig `mapstructure:"recruitment"`
	Feedback    FormConfig `mapstructure:"feedback"`
}

// FormConfig tunes one submission workflow. SimulatedLatency models the
// backend round trip that does not exist; zero disables it. SuccessWindow is
// how long the workflow reports success before resetting to idle.
type FormConfig struct {
	SimulatedLatency time.Duration `mapstructure:"simulated_latency"`
	SuccessWindow    time.Duration `mapstructure:"success_window"`
}

type RemindersConfig struct {
	DefaultLead     int    `mapstructure:"default_lead"`
	DefaultLeadUnit string `mapstructure:"default_lead_unit"`
	Icon            string `mapstructure:"icon"`
	Badge           string `mapstructure:"badge"`
}

// ChapterConfig carries chapter-wide constants that were module globals in
// earlier iterations; injected here so nothing hides in package state.
type ChapterConfig struct {
	Organizer   string            `mapstructure:"organizer"`
	SocialLinks map[string]string `mapstructure:"social_links"`
}

// Default returns the configuration used when embedding without a config
// file. Values mirror the production chapter app.
func Default() *Config {
	return &Config{
		Log:   LogConfig{Level: "info"},
		Store: StoreConfig{Path: "chapter.db"},
		Forms: FormsConfig{
			Recruitment: FormConfig{
				SimulatedLatency: 1500 * time.Millisecond,
				SuccessWindow:    5 * time.Second,
			},
			Feedback: FormConfig{
				SimulatedLatency: 1000 * time.Millisecond,
				SuccessWindow:    3 * time.Second,
			},
		},
		Reminders: RemindersConfig{
			DefaultLead:     15,
			DefaultLeadUnit: "minutes",
			Icon:            "/favicon.ico",
			Badge:           "/favicon.ico",
		},
		Chapter: ChapterConfig{
			Organizer: "IEEE IGDTUW",
			SocialLinks: map[string]string{
				"instagram": "https://instagram.com/ieeeigdtuw",
				"linkedin":  "https://linkedin.com/company/ieee-igdtuw",
				"twitter":   "https://twitter.com/ieeeigdtuw",
				"youtube":   "https://youtube.com/@ieeeigdtuw",
				"github":    "https://github.com/ieee-igdtuw",
				"website":   "https://igdtuw.ac.in",
			},
		},
	}
}

// LoadConfig reads config.yaml if present, with environment variable
// overrides. Missing file falls back to defaults; a malformed file or a
// malformed social link is an error.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()
	setDefaults(Default())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	for name, link := range c.Chapter.SocialLinks {
		u, err := url.Parse(link)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid social link %q: %s", name, link)
		}
	}
	if c.Forms.Recruitment.SuccessWindow <= 0 || c.Forms.Feedback.SuccessWindow <= 0 {
		return fmt.Errorf("success windows must be positive")
	}
	return nil
}

func setDefaults(d *Config) {
	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("store.path", d.Store.Path)
	viper.SetDefault("forms.recruitment.simulated_latency", d.Forms.Recruitment.SimulatedLatency)
	viper.SetDefault("forms.recruitment.success_window", d.Forms.Recruitment.SuccessWindow)
	viper.SetDefault("forms.feedback.simulated_latency", d.Forms.Feedback.SimulatedLatency)
	viper.SetDefault("forms.feedback.success_window", d.Forms.Feedback.SuccessWindow)
	viper.SetDefault("reminders.default_lead", d.Reminders.DefaultLead)
	viper.SetDefault("reminders.default_lead_unit", d.Reminders.DefaultLeadUnit)
	viper.SetDefault("reminders.icon", d.Reminders.Icon)
	viper.SetDefault("reminders.badge", d.Reminders.Badge)
	viper.SetDefault("chapter.organizer", d.Chapter.Organizer)
	viper.SetDefault("chapter.social_links", d.Chapter.SocialLinks)
}
