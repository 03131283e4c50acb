package transcript

import (
	"fmt"
	"time"

	"github.com/kbukum/wonderwords/validation"
)

const defaultTimeout = 30 * time.Second

// Config configures resolution.
type Config struct {
	// DefaultLanguages apply when a request names none. Defaults to ["en"].
	DefaultLanguages []string `yaml:"default_languages" mapstructure:"default_languages"`
	// Timeout bounds one resolution end to end. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// Backends lists provider names in priority order.
	Backends []string `yaml:"backends" mapstructure:"backends"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if len(c.DefaultLanguages) == 0 {
		c.DefaultLanguages = append([]string(nil), DefaultLanguages...)
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if len(c.Backends) == 0 {
		c.Backends = []string{"youtube", "subprocess"}
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	for _, code := range c.DefaultLanguages {
		if !validation.IsLanguageCode(code) {
			return fmt.Errorf("transcript.default_languages: invalid code %q", code)
		}
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("transcript.timeout must be positive")
	}
	if len(c.Backends) == 0 {
		return fmt.Errorf("transcript.backends must name at least one backend")
	}
	return nil
}
