package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Program struct {
		// Timezone is the IANA zone all schedule dates are interpreted in.
		Timezone string `yaml:"timezone" env:"PROGRAM_TIMEZONE"`
		// ExclusionStart/ExclusionEnd bound the date range excluded from the
		// weekends-remaining count (for example an onsite residency block).
		// Both are optional, but must be set together.
		ExclusionStart string `yaml:"exclusion_start" env:"PROGRAM_EXCLUSION_START"`
		ExclusionEnd   string `yaml:"exclusion_end" env:"PROGRAM_EXCLUSION_END"`
		// FinalMarker is a case-insensitive substring that pins the last
		// class day to the latest session whose label contains it.
		FinalMarker string `yaml:"final_marker" env:"PROGRAM_FINAL_MARKER"`
		// RefreshInterval is the poll interval suggested to dashboard clients.
		RefreshInterval string `yaml:"refresh_interval" env:"PROGRAM_REFRESH_INTERVAL"`
	} `yaml:"program"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// A local .env file overrides nothing by itself, it only seeds the
	// environment before the env-tag pass.
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Program.Timezone = "America/Toronto"
	config.Program.RefreshInterval = "1s"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if _, err := time.LoadLocation(config.Program.Timezone); err != nil {
		return fmt.Errorf("invalid program timezone %q: %w", config.Program.Timezone, err)
	}

	if (config.Program.ExclusionStart == "") != (config.Program.ExclusionEnd == "") {
		return fmt.Errorf("exclusion window requires both start and end dates")
	}

	if config.Program.ExclusionStart != "" {
		start, err := time.Parse(dateLayout, config.Program.ExclusionStart)
		if err != nil {
			return fmt.Errorf("invalid exclusion start date: %w", err)
		}
		end, err := time.Parse(dateLayout, config.Program.ExclusionEnd)
		if err != nil {
			return fmt.Errorf("invalid exclusion end date: %w", err)
		}
		if end.Before(start) {
			return fmt.Errorf("exclusion end date precedes start date")
		}
	}

	if _, err := time.ParseDuration(config.Program.RefreshInterval); err != nil {
		return fmt.Errorf("invalid refresh interval format: %w", err)
	}

	return nil
}

// Location returns the configured program time zone. Validity is checked at
// load time, so callers get a usable location for any validated Config.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Program.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ExclusionWindow returns the configured exclusion window bounds in the
// program zone, or ok=false when no window is configured. The end bound
// covers the whole end date.
func (c *Config) ExclusionWindow() (start, end time.Time, ok bool) {
	if c.Program.ExclusionStart == "" || c.Program.ExclusionEnd == "" {
		return time.Time{}, time.Time{}, false
	}

	loc := c.Location()
	start, err := time.ParseInLocation(dateLayout, c.Program.ExclusionStart, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.ParseInLocation(dateLayout, c.Program.ExclusionEnd, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	// Built from calendar components so the bound stays on the end date even
	// when that date changes the clock (DST).
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, loc)
	return start, end, true
}
