package resilience

import (
	"fmt"
	"time"
)

// Config configures a circuit breaker.
type Config struct {
	// Name identifies the breaker in logs, usually the backend name.
	Name string `yaml:"-" mapstructure:"-"`

	// Enabled puts a breaker in front of every backend.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// MaxFailures is the number of consecutive failures that opens the circuit.
	MaxFailures int `yaml:"max_failures" mapstructure:"max_failures"`

	// Cooldown is how long an open circuit waits before a half-open probe.
	Cooldown time.Duration `yaml:"cooldown" mapstructure:"cooldown"`

	// HalfOpenMaxCalls is the number of probes allowed while half-open.
	HalfOpenMaxCalls int `yaml:"half_open_max_calls" mapstructure:"half_open_max_calls"`

	// IsFailure decides which errors count. Nil counts every error.
	IsFailure func(error) bool `yaml:"-" mapstructure:"-"`

	// OnStateChange is called on every transition with the breaker locked;
	// it must not call back into the breaker.
	OnStateChange func(name string, from, to State) `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.MaxFailures <= 0 {
		c.MaxFailures = 5
	}
	if c.Cooldown <= 0 {
		c.Cooldown = 30 * time.Second
	}
	if c.HalfOpenMaxCalls <= 0 {
		c.HalfOpenMaxCalls = 1
	}
}

// Validate checks the numeric bounds.
func (c *Config) Validate() error {
	if c.MaxFailures < 1 {
		return fmt.Errorf("breaker.max_failures must be at least 1 (got: %d)", c.MaxFailures)
	}
	if c.Cooldown <= 0 {
		return fmt.Errorf("breaker.cooldown must be positive (got: %s)", c.Cooldown)
	}
	return nil
}
