package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/cardledger/internal/core/domain"
	"github.com/custodia-labs/cardledger/internal/core/ports/driven"
	"github.com/custodia-labs/cardledger/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyLogLevel    = "log.level"
	keyLogFormat   = "log.format"
	keyOutputColor = "output.color"
	keyInputFormat = "input.format"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Unknown or malformed values fall back to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.Settings{
		Log: domain.LogSettings{
			Level:  s.getLogLevel(defaults.Log.Level),
			Format: s.getLogFormat(defaults.Log.Format),
		},
		Output: domain.OutputSettings{
			Color: s.getBool(keyOutputColor, defaults.Output.Color),
		},
		Input: domain.InputSettings{
			Format: s.getInputFormat(defaults.Input.Format),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if s.configStore == nil {
		return domain.ErrNotConfigured
	}
	if err := s.configStore.Set(keyLogLevel, settings.Log.Level.String()); err != nil {
		return fmt.Errorf("save log level: %w", err)
	}
	if err := s.configStore.Set(keyLogFormat, settings.Log.Format.String()); err != nil {
		return fmt.Errorf("save log format: %w", err)
	}
	if err := s.configStore.Set(keyOutputColor, settings.Output.Color); err != nil {
		return fmt.Errorf("save output color: %w", err)
	}
	if err := s.configStore.Set(keyInputFormat, settings.Input.Format.String()); err != nil {
		return fmt.Errorf("save input format: %w", err)
	}
	return nil
}

// Set validates value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotConfigured
	}

	switch key {
	case keyLogLevel:
		if !domain.LogLevel(value).IsValid() {
			return fmt.Errorf("%w: invalid log level %q", domain.ErrValidation, value)
		}
		return s.configStore.Set(key, value)
	case keyLogFormat:
		if !domain.LogFormat(value).IsValid() {
			return fmt.Errorf("%w: invalid log format %q", domain.ErrValidation, value)
		}
		return s.configStore.Set(key, value)
	case keyInputFormat:
		if !domain.InputFormat(value).IsValid() {
			return fmt.Errorf("%w: invalid input format %q", domain.ErrValidation, value)
		}
		return s.configStore.Set(key, value)
	case keyOutputColor:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrValidation, key)
		}
		return s.configStore.Set(key, b)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrValidation, key)
	}
}

// Keys returns the supported setting keys.
func (s *SettingsService) Keys() []string {
	return []string{keyLogLevel, keyLogFormat, keyOutputColor, keyInputFormat}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func (s *SettingsService) getLogLevel(defaultVal domain.LogLevel) domain.LogLevel {
	level := domain.LogLevel(s.configStore.GetString(keyLogLevel))
	if level.IsValid() {
		return level
	}
	return defaultVal
}

func (s *SettingsService) getLogFormat(defaultVal domain.LogFormat) domain.LogFormat {
	format := domain.LogFormat(s.configStore.GetString(keyLogFormat))
	if format.IsValid() {
		return format
	}
	return defaultVal
}

func (s *SettingsService) getInputFormat(defaultVal domain.InputFormat) domain.InputFormat {
	format := domain.InputFormat(s.configStore.GetString(keyInputFormat))
	if format.IsValid() {
		return format
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
