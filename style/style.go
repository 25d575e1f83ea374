// Package style defines the explicit presentation configuration for help
// rendering. Renderers receive a Config at construction; nothing reads
// terminal environment or other ambient state, so rendering output is
// reproducible in tests.
package style

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vksvicky/Coreveo-sub001/internal/yamlutil"
)

// Sentinel errors for style validation.
var (
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrInvalidWordWrap = errors.New("invalid word wrap")
	ErrEmptyCodeStyle  = errors.New("code style cannot be empty")
	ErrStyleParse      = errors.New("failed to parse style config")
)

// Word wrap bounds in columns. Zero disables wrapping.
const (
	MinWordWrap     = 20
	MaxWordWrap     = 200
	DefaultWordWrap = 80
)

// Glamour standard theme names accepted for Config.Theme.
var knownThemes = map[string]bool{
	"ascii":       true,
	"dark":        true,
	"dracula":     true,
	"light":       true,
	"notty":       true,
	"pink":        true,
	"tokyo-night": true,
}

// Config describes how rendered help text is styled.
type Config struct {
	Theme     string `yaml:"theme"`      // glamour standard style name
	WordWrap  int    `yaml:"word_wrap"`  // columns; 0 disables wrapping
	CodeStyle string `yaml:"code_style"` // chroma style for code blocks
	Accent    string `yaml:"accent"`     // ANSI color for headings and bullets
}

// Default returns the built-in style configuration.
func Default() Config {
	return Config{
		Theme:     "dark",
		WordWrap:  DefaultWordWrap,
		CodeStyle: "monokai",
		Accent:    "12",
	}
}

// Validate checks that the configuration is usable.
// Comparison is case-insensitive; Validate does not mutate.
func (c Config) Validate() error {
	if !knownThemes[strings.ToLower(c.Theme)] {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, c.Theme)
	}
	if c.WordWrap != 0 && (c.WordWrap < MinWordWrap || c.WordWrap > MaxWordWrap) {
		return fmt.Errorf("%w: %d (must be 0 or between %d and %d)",
			ErrInvalidWordWrap, c.WordWrap, MinWordWrap, MaxWordWrap)
	}
	if strings.TrimSpace(c.CodeStyle) == "" {
		return ErrEmptyCodeStyle
	}
	return nil
}

// Load parses a YAML style config. Fields absent from the input keep their
// default values; unknown fields are rejected.
func Load(data []byte) (Config, error) {
	cfg := Default()
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrStyleParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads and parses a YAML style config from path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading style config: %w", err)
	}
	return Load(data)
}

// Marshal encodes the configuration as YAML, for writing starter configs.
func (c Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}
