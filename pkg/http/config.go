package http

import (
	"fmt"
	"os"

	"github.com/shapestone/shape-httpresp/internal/tokenizer"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// DefaultBufferSize is the size of the receive buffer reused across reads.
const DefaultBufferSize = 4096

// DefaultMaxHeaderBytes bounds the status line plus header section.
const DefaultMaxHeaderBytes = tokenizer.DefaultMaxHeaderBytes

// Config controls a Decoder. The zero value is usable; a nil *Config means
// the defaults.
type Config struct {
	BufferSize     int   `yaml:"bufferSize"`     // receive buffer size, default 4096
	MaxHeaderBytes int   `yaml:"maxHeaderBytes"` // status line + headers limit, default 64KB
	MaxBodySize    int64 `yaml:"maxBodySize"`    // 0 means unbounded

	Logger  *zap.Logger `yaml:"-"` // defaults to a no-op logger
	Metrics *Metrics    `yaml:"-"` // optional
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() *Config {
	c := (*Config)(nil).withDefaults()
	return &c
}

// ParseConfig decodes a YAML document into a Config. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("http: config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("http: config: %w", err)
	}
	return ParseConfig(content)
}

// Validate rejects negative sizes.
func (c *Config) Validate() error {
	if c.BufferSize < 0 {
		return fmt.Errorf("http: config: bufferSize must not be negative, got %d", c.BufferSize)
	}
	if c.MaxHeaderBytes < 0 {
		return fmt.Errorf("http: config: maxHeaderBytes must not be negative, got %d", c.MaxHeaderBytes)
	}
	if c.MaxBodySize < 0 {
		return fmt.Errorf("http: config: maxBodySize must not be negative, got %d", c.MaxBodySize)
	}
	return nil
}

// withDefaults returns a copy of c with unset fields defaulted.
func (c *Config) withDefaults() Config {
	var out Config
	if c != nil {
		out = *c
	}
	if out.BufferSize <= 0 {
		out.BufferSize = DefaultBufferSize
	}
	if out.MaxHeaderBytes <= 0 {
		out.MaxHeaderBytes = DefaultMaxHeaderBytes
	}
	if out.MaxBodySize < 0 {
		out.MaxBodySize = 0
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	return out
}
