package subprocess

import (
	"fmt"
	"time"
)

// Config configures the out-of-process backend.
type Config struct {
	// Name is the provider name. Defaults to "subprocess".
	Name string `yaml:"name" mapstructure:"name"`

	// Binary is the CLI executable. Defaults to "transcript".
	Binary string `yaml:"binary" mapstructure:"binary"`

	// Args are placed before the request flags, e.g. a script path.
	Args []string `yaml:"args" mapstructure:"args"`

	// Timeout bounds one run. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// GracePeriod is the wait between SIGTERM and SIGKILL. Defaults to 2s.
	GracePeriod time.Duration `yaml:"grace_period" mapstructure:"grace_period"`

	// MaxStderr caps the stderr line reported in Unknown failures.
	MaxStderr int `yaml:"max_stderr" mapstructure:"max_stderr"`

	DefaultLanguages []string `yaml:"default_languages" mapstructure:"default_languages"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "subprocess"
	}
	if c.Binary == "" {
		c.Binary = "transcript"
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.GracePeriod <= 0 {
		c.GracePeriod = 2 * time.Second
	}
	if c.MaxStderr <= 0 {
		c.MaxStderr = 512
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Binary == "" {
		return fmt.Errorf("subprocess.binary is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("subprocess.timeout must be positive")
	}
	return nil
}
