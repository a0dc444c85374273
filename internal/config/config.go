package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration wraps time.Duration so TOML values can be written as "2s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML encoding.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// ClientConfig selects the GUI client and its command-line binary.
type ClientConfig struct {
	Name    string `toml:"name"`    // known: tower, fork, gitkraken, sublime-merge
	Command string `toml:"command"` // overrides the binary for the named client
}

// TimeoutConfig bounds the external process calls.
type TimeoutConfig struct {
	Detect Duration `toml:"detect"` // detection and root resolution ceiling
	Launch Duration `toml:"launch"` // client spawn ceiling
}

// Config holds the twr configuration
type Config struct {
	Client   ClientConfig  `toml:"client"`
	Timeouts TimeoutConfig `toml:"timeouts"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Client: ClientConfig{
			Name: "tower",
		},
		Timeouts: TimeoutConfig{
			Detect: Duration(2 * time.Second),
			Launch: Duration(5 * time.Second),
		},
	}
}

// DefaultConfigTOML is the config file written by `twr config init`.
const DefaultConfigTOML = `# twr configuration

[client]
# GUI git client to open repositories in.
# Known clients: tower, fork, gitkraken, sublime-merge
name = "tower"
# Uncomment to override the client's command-line binary:
# command = "gittower"

[timeouts]
# Ceiling for repository detection and root resolution.
detect = "2s"
# Ceiling for launching the client (not its subsequent lifetime).
launch = "5s"
`

// Path returns the path to the global config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "twr", "config.toml"), nil
}

// Load reads the global config file, applying the TWR_CLIENT override.
// A missing file yields the defaults without error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), fmt.Errorf("locate config: %w", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from an explicit path.
// A missing file yields the defaults without error.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv applies environment overrides.
func applyEnv(cfg *Config) {
	if client := os.Getenv("TWR_CLIENT"); client != "" {
		cfg.Client.Name = client
		cfg.Client.Command = ""
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Client.Name == "" && c.Client.Command == "" {
		return fmt.Errorf("client.name or client.command must be set")
	}
	if c.Timeouts.Detect.Std() <= 0 {
		return fmt.Errorf("timeouts.detect must be positive, got %s", c.Timeouts.Detect.Std())
	}
	if c.Timeouts.Launch.Std() <= 0 {
		return fmt.Errorf("timeouts.launch must be positive, got %s", c.Timeouts.Launch.Std())
	}
	return nil
}

type ctxKey struct{}

// WithConfig attaches a config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns the defaults if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}
