package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/alarms"
)

// Config holds the settings shared by alarmd and alarmctl.
type Config struct {
	// ListenAddress is the gRPC control API address.
	ListenAddress string `yaml:"listen_addr" envconfig:"LISTEN_ADDR"`
	// MetricsAddress serves /metrics; MetricsDisabled turns the endpoint off.
	MetricsAddress string `yaml:"metrics_addr" envconfig:"METRICS_ADDR"`
	// StoreFile is the path of the alarm store document.
	StoreFile string `yaml:"store_file" envconfig:"STORE_FILE"`
	// LegacyDatabase is the SQLite database written by earlier releases.
	// It is read once, on the first start, when the file exists.
	LegacyDatabase string `yaml:"legacy_database" envconfig:"LEGACY_DATABASE"`
	// Timezone names the location wall-clock times are interpreted in; empty means local.
	Timezone string `yaml:"timezone" envconfig:"TIMEZONE"`
	// PreAlertOffset is how long before the alarm the pre-alert rings.
	PreAlertOffset time.Duration `yaml:"prealert_offset" envconfig:"PREALERT_OFFSET"`
	// SnoozeDuration is the default snooze length.
	SnoozeDuration time.Duration `yaml:"snooze_duration" envconfig:"SNOOZE_DURATION"`
	// RingDuration is how long an unacknowledged alarm rings before it is silenced.
	RingDuration time.Duration `yaml:"ring_duration" envconfig:"RING_DURATION"`
	// WebhookURL receives lifecycle events as JSON; empty disables the webhook.
	WebhookURL string `yaml:"webhook_url" envconfig:"WEBHOOK_URL"`
	// RingCommand is started with ALARM_ID and ALARM_EVENT set whenever an
	// alarm starts ringing; empty disables it.
	RingCommand []string `yaml:"ring_command,omitempty" envconfig:"RING_COMMAND"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	// Timeout bounds RPC calls and shutdown steps.
	Timeout time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "alarm-clock-settings.yaml"

	// DefaultStoreFilename is the default filename of the alarm store.
	DefaultStoreFilename = "alarm-clock-store.yaml"

	// DefaultListenAddress is the default gRPC control API address.
	DefaultListenAddress = "127.0.0.1:50061"

	// DefaultMetricsAddress is the default Prometheus endpoint address.
	DefaultMetricsAddress = "127.0.0.1:9161"

	// MetricsDisabled as the metrics address turns the endpoint off.
	MetricsDisabled = "none"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultFilePermissions is the default file permission for written files.
	DefaultFilePermissions = 0o600

	// EnvPrefix prefixes every environment override, e.g. ALARMCLOCK_LISTEN_ADDR.
	EnvPrefix = "ALARMCLOCK"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNegativeDuration is returned for durations below zero.
	errNegativeDuration = errors.New("duration must not be negative")
	// errUnknownLogLevel is returned for log levels zap does not know.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns the settings used when no file is present.
func Default() *Config {
	cfg := new(Config)
	_ = Validate(cfg)

	return cfg
}

// Load reads configuration from the provided path, applies environment
// overrides and validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	var cfg Config

	contents, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err = yaml.Unmarshal(contents, &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("apply environment overrides: %w", err)
	}

	if err = Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings and fills in defaults for unset fields.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	applyDefaults(settings)

	if _, err := net.ResolveTCPAddr("tcp", settings.ListenAddress); err != nil {
		return fmt.Errorf("invalid listen address: %w", err)
	}

	if settings.MetricsEnabled() {
		if _, err := net.ResolveTCPAddr("tcp", settings.MetricsAddress); err != nil {
			return fmt.Errorf("invalid metrics address: %w", err)
		}
	}

	if _, err := settings.Location(); err != nil {
		return err
	}

	for name, value := range map[string]time.Duration{
		"prealert_offset": settings.PreAlertOffset,
		"snooze_duration": settings.SnoozeDuration,
		"ring_duration":   settings.RingDuration,
	} {
		if value < 0 {
			return fmt.Errorf("%w: %s is %s", errNegativeDuration, name, value)
		}
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, settings.LogLevel)
	}

	if settings.WebhookURL == "" {
		return nil
	}

	if _, err := url.ParseRequestURI(settings.WebhookURL); err != nil {
		return fmt.Errorf("invalid webhook URL: %w", err)
	}

	return nil
}

func applyDefaults(settings *Config) {
	prefs := alarms.DefaultPreferences()

	if settings.ListenAddress == "" {
		settings.ListenAddress = DefaultListenAddress
	}

	if settings.MetricsAddress == "" {
		settings.MetricsAddress = DefaultMetricsAddress
	}

	if settings.StoreFile == "" {
		settings.StoreFile = DefaultStoreFilename
	}

	if settings.PreAlertOffset == 0 {
		settings.PreAlertOffset = prefs.PreAlertOffset
	}

	if settings.SnoozeDuration == 0 {
		settings.SnoozeDuration = prefs.SnoozeLength
	}

	if settings.RingDuration == 0 {
		settings.RingDuration = prefs.RingDuration
	}

	if settings.LogLevel == "" {
		settings.LogLevel = "info"
	}

	// Set default timeout if not specified
	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}
}

// MetricsEnabled reports whether the metrics endpoint should be served.
func (c *Config) MetricsEnabled() bool {
	return c.MetricsAddress != MetricsDisabled
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}

	return loc, nil
}

// Preferences converts the durations into registry preferences.
func (c *Config) Preferences() alarms.Preferences {
	return alarms.Preferences{
		PreAlertOffset: c.PreAlertOffset,
		SnoozeLength:   c.SnoozeDuration,
		RingDuration:   c.RingDuration,
	}
}
