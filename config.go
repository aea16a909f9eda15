package calcom

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultHost is the public API base URL.
const DefaultHost = "https://api.cal.com/v1"

// Config holds the long-lived settings of a Client. A Client copies its
// Config at construction; later changes to the value have no effect on it.
type Config struct {
	// Hosts lists the base URLs of the API. Calls use Hosts[0] unless a
	// host index is given per call.
	Hosts []string `yaml:"hosts,omitempty" default:"[\"https://api.cal.com/v1\"]" validate:"dive,url"`
	// APIKey is the credential sent for the ApiKeyAuth scheme.
	APIKey string `yaml:"apiKey,omitempty"`
	// APIKeyPrefix is prepended to APIKey, separated by a space, when set.
	APIKeyPrefix string `yaml:"apiKeyPrefix,omitempty"`
	// Timeout is the default per-call timeout.
	Timeout Timeout `yaml:"timeout,omitempty"`
	// DateFormat formats date parameters and date fields. It accepts a Go
	// layout or a YYYY-MM-DD style pattern.
	DateFormat string `yaml:"dateFormat,omitempty" default:"2006-01-02"`
	// UserAgent is sent on every request.
	UserAgent string `yaml:"userAgent,omitempty" default:"calcom-go/1.0"`
	// DefaultHeaders are added to every request before per-call headers.
	DefaultHeaders map[string]string `yaml:"defaultHeaders,omitempty"`
	// MaxResponseBytes caps decoded response bodies. Zero disables the cap.
	MaxResponseBytes int64 `yaml:"maxResponseBytes,omitempty" default:"10485760" validate:"gte=0"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	cfg := &Config{}
	defaults.MustSet(cfg)
	return cfg
}

// LoadConfig reads a YAML configuration file and fills every field the file
// leaves empty with its default. An empty path returns the defaults. A file
// may set timeout.total to 0s to disable the total cap.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	var explicit explicitZeros
	if path != "" {
		fstat, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("calcom: configuration file %s: %w", path, err)
		}
		if fstat.IsDir() {
			return nil, fmt.Errorf("calcom: configuration file %s is a directory", path)
		}

		content, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("calcom: read configuration file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("calcom: unmarshal configuration file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(content, &explicit); err != nil {
			return nil, fmt.Errorf("calcom: unmarshal configuration file %s: %w", path, err)
		}
	}

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("calcom: set configuration defaults: %w", err)
	}
	if total := explicit.Timeout.Total; total != nil && *total == 0 {
		cfg.Timeout.Total = 0
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// explicitZeros records the fields a file sets to zero on purpose. Defaults
// cannot tell those from absent ones.
type explicitZeros struct {
	Timeout struct {
		Total *time.Duration `yaml:"total"`
	} `yaml:"timeout"`
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate reports configuration values that can never produce a request.
func (c *Config) Validate() error {
	if len(c.Hosts) == 0 {
		return fmt.Errorf("calcom: invalid config: %w", ErrNoHost)
	}

	err := configValidator.Struct(c)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%s: %v fails %s%s", fe.Namespace(), fe.Value(), fe.Tag(), tagParam(fe.Param())))
	}
	return fmt.Errorf("calcom: invalid config: %w", errors.Join(errs...))
}

func tagParam(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}

// Host returns the base URL at index.
func (c *Config) Host(index int) (string, error) {
	if index < 0 || index >= len(c.Hosts) {
		return "", fmt.Errorf("calcom: host index %d of %d: %w", index, len(c.Hosts), ErrNoHost)
	}
	return c.Hosts[index], nil
}

// clone returns a deep copy of c.
func (c *Config) clone() *Config {
	out := *c
	out.Hosts = append([]string(nil), c.Hosts...)
	out.DefaultHeaders = maps.Clone(c.DefaultHeaders)
	return &out
}

// Timeout bounds one call. Total caps the whole call. Connect caps the time
// to obtain a connection and Read caps the time from obtaining a connection
// until the response has been consumed. Zero fields are not enforced.
type Timeout struct {
	Total   time.Duration `yaml:"total,omitempty" default:"30s" validate:"gte=0"`
	Connect time.Duration `yaml:"connect,omitempty" validate:"gte=0"`
	Read    time.Duration `yaml:"read,omitempty" validate:"gte=0"`
}
