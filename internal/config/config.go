package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// Settings holds the application configuration.
//
// Fields carry no envconfig defaults, so values already present in
// the struct (built-in defaults, then the config file) survive when the
// matching environment variable is unset.
type Settings struct {
	Host              string        `mapstructure:"host" envconfig:"HACKATHON_HOST"`
	Port              int           `mapstructure:"port" envconfig:"HACKATHON_PORT"`
	IndexFile         string        `mapstructure:"index_file" envconfig:"HACKATHON_INDEX_FILE"`
	// MaxBodyBytes caps the /generate body; 0 reads it whole.
	MaxBodyBytes      int64         `mapstructure:"max_body_bytes" envconfig:"HACKATHON_MAX_BODY_BYTES"`
	LogLevel          string        `mapstructure:"log_level" envconfig:"HACKATHON_LOG_LEVEL"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" envconfig:"HACKATHON_READ_HEADER_TIMEOUT"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" envconfig:"HACKATHON_SHUTDOWN_TIMEOUT"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Settings {
	return Settings{
		Port:              8080,
		IndexFile:         "index.html",
		LogLevel:          "info",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Addr is the listen address for net/http.
func (s *Settings) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// Validate reports the first invalid field.
func (s *Settings) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", s.Port)
	}
	if s.IndexFile == "" {
		return errors.New("index_file is required")
	}
	if s.MaxBodyBytes < 0 {
		return fmt.Errorf("max_body_bytes must not be negative, got %d", s.MaxBodyBytes)
	}
	return nil
}

// Load builds the settings from, in increasing precedence: the defaults,
// the YAML file at configFile (skipped when empty), a .env file in the
// working directory and the process environment.
func Load(configFile string) (*Settings, error) {
	s := Defaults()

	if configFile != "" {
		if err := loadFile(configFile, &s); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	if err := envconfig.Process("hackathon", &s); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &s, nil
}

func loadFile(configFile string, s *Settings) error {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	if err := v.Unmarshal(s); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}
	return nil
}
