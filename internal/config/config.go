package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/username/contact-assistant/internal/contacts"
)

// Config represents application configuration
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Birthdays BirthdaysConfig `mapstructure:"birthdays"`
	Calendar  CalendarConfig  `mapstructure:"calendar"`
	Daemon    DaemonConfig    `mapstructure:"daemon"`
	Contacts  []ContactConfig `mapstructure:"contacts"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// BirthdaysConfig represents upcoming birthday query settings
type BirthdaysConfig struct {
	WindowDays int `mapstructure:"window_days"`
}

// CalendarConfig represents days off configuration
type CalendarConfig struct {
	Type string `mapstructure:"type"` // "weekends" or "file"
	File string `mapstructure:"file"` // Required for file type
}

// DaemonConfig represents reminder daemon configuration
type DaemonConfig struct {
	DailyTime  string `mapstructure:"daily_time"`  // Time to run daily reminder (HH:MM, local time)
	SystemTray bool   `mapstructure:"system_tray"` // Show system tray icon (Windows only)
}

// ContactConfig represents a contact loaded into the directory at start-up
type ContactConfig struct {
	Name     string   `mapstructure:"name"`
	Phones   []string `mapstructure:"phones"`
	Birthday string   `mapstructure:"birthday"`
}

// Load loads configuration from file. A missing config file is not an
// error when no explicit path was given: every key has a default.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("birthdays.window_days", contacts.DefaultWindowDays)
	v.SetDefault("calendar.type", "weekends")
	v.SetDefault("daemon.daily_time", "09:00")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.contact-assistant")
		v.AddConfigPath("/etc/contact-assistant")
	}

	// Read environment variables
	v.SetEnvPrefix("ASSISTANT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Birthdays.WindowDays < 0 || c.Birthdays.WindowDays > 366 {
		return fmt.Errorf("birthdays.window_days must be between 0 and 366")
	}

	switch c.Calendar.Type {
	case "", "weekends":
	case "file":
		if c.Calendar.File == "" {
			return fmt.Errorf("calendar.file is required for file type")
		}
	default:
		return fmt.Errorf("calendar.type must be 'weekends' or 'file', got '%s'", c.Calendar.Type)
	}

	var h, m int
	if c.Daemon.DailyTime != "" {
		if _, err := fmt.Sscanf(c.Daemon.DailyTime, "%d:%d", &h, &m); err != nil || h < 0 || h > 23 || m < 0 || m > 59 {
			return fmt.Errorf("daemon.daily_time must be HH:MM, got '%s'", c.Daemon.DailyTime)
		}
	}

	for i, contact := range c.Contacts {
		if contact.Name == "" {
			return fmt.Errorf("contacts[%d].name is required", i)
		}
	}

	return nil
}

// GetDailyTime returns the configured daily reminder time.
// Returns hour and minute (0-23, 0-59). Default: 09:00
func (c *DaemonConfig) GetDailyTime() (hour, minute int) {
	if c.DailyTime == "" {
		return 9, 0
	}

	var h, m int
	_, err := fmt.Sscanf(c.DailyTime, "%d:%d", &h, &m)
	if err != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 9, 0 // Fallback to default
	}
	return h, m
}

// GetWindowDays returns the birthday look-ahead in days
func (c *BirthdaysConfig) GetWindowDays() int {
	if c.WindowDays <= 0 {
		return contacts.DefaultWindowDays
	}
	return c.WindowDays
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
	c.Calendar.File = os.ExpandEnv(c.Calendar.File)
}

// BuildDirectory creates a directory from the configured contacts.
// Entries are validated the same way interactive input is.
func (c *Config) BuildDirectory() (*contacts.Directory, error) {
	book := contacts.NewDirectory()
	for i, contact := range c.Contacts {
		record, err := contacts.NewRecord(contact.Name)
		if err != nil {
			return nil, fmt.Errorf("contacts[%d]: %w", i, err)
		}
		for _, phone := range contact.Phones {
			if err := record.AddPhone(phone); err != nil {
				return nil, fmt.Errorf("contacts[%d] %s: %w", i, contact.Name, err)
			}
		}
		if contact.Birthday != "" {
			if err := record.AddBirthday(contact.Birthday); err != nil {
				return nil, fmt.Errorf("contacts[%d] %s: %w", i, contact.Name, err)
			}
		}
		book.AddRecord(record)
	}
	return book, nil
}
