package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kbukum/wonderwords/config"
	"github.com/kbukum/wonderwords/observability"
	"github.com/kbukum/wonderwords/resilience"
	"github.com/kbukum/wonderwords/server"
	"github.com/kbukum/wonderwords/subprocess"
	"github.com/kbukum/wonderwords/transcript"
	"github.com/kbukum/wonderwords/youtube"
)

const (
	backendYouTube    = "youtube"
	backendSubprocess = "subprocess"
)

// Config is the transcriptd configuration, loaded from config.yml and the
// environment (SERVER_PORT, TRANSCRIPT_TIMEOUT, YOUTUBE_BASE_URL, ...).
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Transcript    transcript.Config    `yaml:"transcript" mapstructure:"transcript"`
	YouTube       youtube.Config       `yaml:"youtube" mapstructure:"youtube"`
	Subprocess    subprocess.Config    `yaml:"subprocess" mapstructure:"subprocess"`
	Breaker       resilience.Config    `yaml:"breaker" mapstructure:"breaker"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
	MCP           MCPConfig            `yaml:"mcp" mapstructure:"mcp"`
}

// MCPConfig controls the streamable HTTP endpoint of the MCP tool.
type MCPConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "transcriptd"
	}
	c.ServiceConfig.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Transcript.ApplyDefaults()
	c.YouTube.ApplyDefaults()
	if len(c.Subprocess.DefaultLanguages) == 0 {
		c.Subprocess.DefaultLanguages = c.Transcript.DefaultLanguages
	}
	c.Subprocess.ApplyDefaults()
	c.Breaker.ApplyDefaults()
	c.Observability.ApplyDefaults()
	if c.MCP.Path == "" {
		c.MCP.Path = "/mcp"
	}
}

func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Transcript.Validate(); err != nil {
		return err
	}
	known := []string{backendYouTube, backendSubprocess}
	for _, b := range c.Transcript.Backends {
		if !slices.Contains(known, b) {
			return fmt.Errorf("transcript.backends: unknown backend %q (known: %s)", b, strings.Join(known, ", "))
		}
	}
	if err := c.YouTube.Validate(); err != nil {
		return err
	}
	if err := c.Subprocess.Validate(); err != nil {
		return err
	}
	if err := c.Breaker.Validate(); err != nil {
		return err
	}
	if err := c.Observability.Validate(); err != nil {
		return err
	}
	if !strings.HasPrefix(c.MCP.Path, "/") {
		return fmt.Errorf("mcp.path must start with / (got: %s)", c.MCP.Path)
	}
	return nil
}
