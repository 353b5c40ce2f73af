// Package config loads user configuration from TOML files.
//
// Configuration is optional: a missing file yields the built-in defaults.
// The default location is $XDG_CONFIG_HOME/netsketch/config.toml (via
// os.UserConfigDir), overridable per call.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/netsketch/netsketch/pkg/errors"
	"github.com/netsketch/netsketch/pkg/network"
)

// FileName is the config file name under the netsketch config directory.
const FileName = "config.toml"

// Config holds user-tunable settings for the CLI and server.
type Config struct {
	Style  StyleConfig  `toml:"style"`
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
}

// StyleConfig overrides the default diagram style. Zero values mean
// "keep the built-in default" so a sparse config file works; the booleans
// and the seed are pointers because false and 0 are meaningful settings.
type StyleConfig struct {
	EdgeColor       string  `toml:"edge_color"`
	NodeColor       string  `toml:"node_color"`
	NodeBorderColor string  `toml:"node_border_color"`
	NodeSize        float64 `toml:"node_size"`
	LayerGap        float64 `toml:"layer_gap"`
	Direction       string  `toml:"direction"`
	Arrowheads      string  `toml:"arrowheads"`
	Bezier          *bool   `toml:"bezier"`
	ShowBias        *bool   `toml:"show_bias"`
	ShowLabels      *bool   `toml:"show_labels"`
	Seed            *int64  `toml:"seed"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr       string `toml:"addr"`
	SessionTTL string `toml:"session_ttl"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	// Backend is "file", "redis", or "none".
	Backend   string `toml:"backend"`
	Dir       string `toml:"dir"`
	RedisAddr string `toml:"redis_addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Cache:  CacheConfig{Backend: "file"},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "netsketch", FileName), nil
}

// Load reads the config at path, or the default location when path is
// empty. A missing file is not an error and yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return cfg, nil
}

// SessionTTL parses the configured session lifetime. An empty value
// yields zero, leaving the server's default in place; a malformed value
// is an error rather than a silent fallback.
func (c Config) SessionTTL() (time.Duration, error) {
	if c.Server.SessionTTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Server.SessionTTL)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse session_ttl %q", c.Server.SessionTTL)
	}
	return d, nil
}

// ApplyStyle overlays the config's style overrides onto s and returns
// the normalized result.
func (c Config) ApplyStyle(s network.Style) network.Style {
	sc := c.Style
	if sc.EdgeColor != "" {
		s.EdgeColor = sc.EdgeColor
	}
	if sc.NodeColor != "" {
		s.NodeColor = sc.NodeColor
	}
	if sc.NodeBorderColor != "" {
		s.NodeBorderColor = sc.NodeBorderColor
	}
	if sc.NodeSize != 0 {
		s.NodeSize = sc.NodeSize
	}
	if sc.LayerGap != 0 {
		s.LayerGap = sc.LayerGap
	}
	if sc.Direction != "" {
		s.Direction = network.Direction(sc.Direction)
	}
	if sc.Arrowheads != "" {
		s.Arrowheads = network.Arrowhead(sc.Arrowheads)
	}
	if sc.Bezier != nil {
		s.Bezier = *sc.Bezier
	}
	if sc.ShowBias != nil {
		s.ShowBias = *sc.ShowBias
	}
	if sc.ShowLabels != nil {
		s.ShowLabels = *sc.ShowLabels
	}
	if sc.Seed != nil {
		s.Seed = *sc.Seed
	}
	return s.Normalize()
}
