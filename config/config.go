// Package config holds the run configuration of the socialrec CLI.
//
// Precedence, lowest first: Default(), the config file (YAML, or TOML by
// .toml extension), SOCIALREC_* environment variables, command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is a recommendation/evaluation run.
type Config struct {
	Training    string    `yaml:"training" toml:"training"`
	Testing     string    `yaml:"testing" toml:"testing"`
	Output      string    `yaml:"output" toml:"output"`
	MaxDepth    int       `yaml:"max_depth" toml:"max_depth"`
	Workers     int       `yaml:"workers" toml:"workers"`
	MetricsFile string    `yaml:"metrics_file" toml:"metrics_file"`
	Log         LogConfig `yaml:"log" toml:"log"`

	// MaxDepthSet records that MaxDepth came from the file, the environment
	// or a flag rather than from Default().
	MaxDepthSet bool `yaml:"-" toml:"-"`
}

// Default returns depth 2, one worker, info-level text logs.
func Default() Config {
	return Config{
		MaxDepth: 2,
		Workers:  1,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load returns Default() overlaid with the file at path. An empty path
// returns Default() unchanged. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("%w: %s: unknown key %q", ErrInvalidConfig, path, undecoded[0].String())
		}
		cfg.MaxDepthSet = md.IsDefined("max_depth")
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("config: decode %s: %w", path, err)
		}
		var keys map[string]yaml.Node
		if err := yaml.Unmarshal(data, &keys); err == nil {
			_, cfg.MaxDepthSet = keys["max_depth"]
		}
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}

	return c.Log.Validate()
}
