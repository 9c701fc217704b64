package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// FileName is the per-repository configuration file.
const FileName = ".flowkit.yaml"

// Config represents the flowkit configuration.
type Config struct {
	Remote string `koanf:"remote"`
	Finish Finish `koanf:"finish"`
	Hooks  Hooks  `koanf:"hooks"`
}

// Finish holds defaults for `git flow <type> finish`.
type Finish struct {
	Fetch      bool   `koanf:"fetch"`
	KeepBranch bool   `koanf:"keep_branch"`
	Message    string `koanf:"message"`
}

// Hooks defines lifecycle hooks.
type Hooks struct {
	PostStart  []string `koanf:"post_start"`
	PostFinish []string `koanf:"post_finish"`
}

func defaults() *confmap.Confmap {
	return confmap.Provider(map[string]any{
		"remote":             "origin",
		"finish.fetch":       false,
		"finish.keep_branch": false,
	}, ".")
}

// Load reads configuration from the given YAML file path and environment variables.
// Missing file is not an error; defaults are used.
// Priority: environment variables > file > defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// confmap.Provider wraps an in-memory map and never fails.
	_ = k.Load(defaults(), nil)

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	// FLOWKIT_FINISH__KEEP_BRANCH -> finish.keep_branch
	if err := k.Load(env.Provider("FLOWKIT_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "FLOWKIT_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env config: %w", err)
	}

	return unmarshal(k)
}

// LoadFromReader reads configuration from an io.Reader containing YAML.
// Environment variables are not applied. Useful for testing.
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	k := koanf.New(".")
	_ = k.Load(defaults(), nil)

	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that are passed to git on the command line.
func (c *Config) Validate() error {
	if c.Remote == "" {
		return fmt.Errorf("remote must not be empty")
	}
	if strings.ContainsFunc(c.Remote, func(r rune) bool { return r <= ' ' || r == 0x7f }) {
		return fmt.Errorf("remote must not contain whitespace or control characters: %q", c.Remote)
	}
	if strings.HasPrefix(c.Remote, "-") {
		return fmt.Errorf("remote must not start with '-': %q", c.Remote)
	}
	return nil
}
