package config

import (
	_ "embed"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Feed kinds understood by the catalogue loader.
const (
	KindLiteral = "literal"
	KindFile    = "file"
	KindHTTP    = "http"
	KindSQLite  = "sqlite"
)

//go:embed default.yml
var defaultYAML []byte

type Feed struct {
	Kind string `yaml:"kind" json:"kind"`
	Path string `yaml:"path,omitempty" json:"path,omitempty"`
	URL  string `yaml:"url,omitempty" json:"url,omitempty"`
}

type Config struct {
	App struct {
		Addr    string `yaml:"addr" json:"addr"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
		LogJSON bool   `yaml:"log_json" json:"log_json"`
	} `yaml:"app" json:"app"`

	Source struct {
		TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
		Feeds          []Feed `yaml:"feeds" json:"feeds"`
	} `yaml:"source" json:"source"`

	Board struct {
		Title     string   `yaml:"title" json:"title"`
		Strict    bool     `yaml:"strict" json:"strict"`
		Types     []string `yaml:"types" json:"types"`
		Locations []string `yaml:"locations" json:"locations"`
	} `yaml:"board" json:"board"`

	Limits struct {
		RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
		Burst             int     `yaml:"burst" json:"burst"`
	} `yaml:"limits" json:"limits"`
}

// Default returns the built-in configuration.
func Default() Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		// default.yml ships with the binary
		panic(err)
	}
	return cfg
}

// DefaultYAML returns the raw bytes of the built-in configuration.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}

func Parse(b []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	return Parse(b)
}

// SourceTimeout is the per-load deadline for fetching feeds.
func (c Config) SourceTimeout() time.Duration {
	if c.Source.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Source.TimeoutSeconds) * time.Second
}
