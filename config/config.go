// Package config handles scholar's file paths and user settings
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Timer         TimerConfig        `mapstructure:"timer"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// TimerConfig holds timer view settings.
	TimerConfig struct {
		// DefaultTarget is the focus target used when --target is not
		// given. Empty disables the target progress bar.
		DefaultTarget string `mapstructure:"default_target"`
		// AutologOnQuit logs the active session when the timer view is
		// quit. When false, quitting discards the session and only the
		// stop key logs it.
		AutologOnQuit bool `mapstructure:"autolog_on_quit"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	configDir      = "scholar"
	configFileName = "config.yml"
	dbFileName     = "scholar.db"
	statusFileName = "status.json"
	logFileName    = "scholar.log"
	dbFilePath     string
	configFilePath string
	statusFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func StatusFilePath() string {
	return statusFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the XDG locations for the config file, database,
// status file, and log file. SCHOLAR_ENV suffixes the file names so that
// development data stays separate.
func InitializePaths() {
	env := strings.TrimSpace(os.Getenv("SCHOLAR_ENV"))
	if env != "" {
		configFileName = "config_" + env + ".yml"
		dbFileName = "scholar_" + env + ".db"
		statusFileName = "status_" + env + ".json"
		logFileName = "scholar_" + env + ".log"
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	statusFilePath = filepath.Join(dataDir, statusFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// New creates a new Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Timer.DefaultTarget == "" {
		return nil
	}

	d, err := time.ParseDuration(c.Timer.DefaultTarget)
	if err != nil {
		return errInvalidTarget.Fmt(c.Timer.DefaultTarget)
	}

	if d < minTargetDuration || d > maxTargetDuration {
		return errTargetOutOfRange.Fmt(minTargetDuration, maxTargetDuration)
	}

	return nil
}

// TargetDuration returns the parsed default focus target, or zero when no
// target is configured.
func (c *Config) TargetDuration() time.Duration {
	if c.Timer.DefaultTarget == "" {
		return 0
	}

	d, err := time.ParseDuration(c.Timer.DefaultTarget)
	if err != nil {
		return 0
	}

	return d
}

var (
	minTargetDuration = 1 * time.Minute
	maxTargetDuration = 12 * time.Hour
)
