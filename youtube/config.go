package youtube

import (
	"fmt"
	"net/url"
	"time"
)

const (
	defaultBaseURL          = "https://www.youtube.com"
	defaultTimeout          = 15 * time.Second
	defaultAcceptLanguage   = "en-US,en;q=0.9"
	defaultMaxResponseBytes = 8 << 20
	defaultUserAgent        = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// Config configures the watch-page source.
type Config struct {
	// BaseURL is the site root the watch page is requested from.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout bounds each HTTP request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	AcceptLanguage string `yaml:"accept_language" mapstructure:"accept_language"`

	// MaxResponseBytes caps the size of a watch page or caption document.
	MaxResponseBytes int64 `yaml:"max_response_bytes" mapstructure:"max_response_bytes"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.AcceptLanguage == "" {
		c.AcceptLanguage = defaultAcceptLanguage
	}
	if c.MaxResponseBytes <= 0 {
		c.MaxResponseBytes = defaultMaxResponseBytes
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("youtube.base_url: %q is not an absolute URL", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("youtube.timeout must be positive")
	}
	return nil
}
