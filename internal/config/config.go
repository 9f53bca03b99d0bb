package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "spark.yaml"

// Config is the project configuration read from spark.yaml.
type Config struct {
	// Dir holds the theme documents.
	Dir string `yaml:"dir" json:"dir"`
	// Prefix is prepended to custom property names.
	Prefix string `yaml:"prefix" json:"prefix"`
	// Out is where build writes the stylesheet.
	Out   string      `yaml:"out" json:"out"`
	Serve ServeConfig `yaml:"serve" json:"serve"`
	Redis RedisConfig `yaml:"redis" json:"redis"`
	Log   LogConfig   `yaml:"log" json:"log"`
}

// ServeConfig configures the HTTP server.
type ServeConfig struct {
	Port int `yaml:"port" json:"port"`
}

// RedisConfig configures the optional stylesheet cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `yaml:"addr" json:"addr"`
	Password string        `yaml:"password" json:"password"`
	DB       int           `yaml:"db" json:"db"`
	Prefix   string        `yaml:"prefix" json:"prefix"`
	TTL      time.Duration `yaml:"ttl" json:"ttl"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Defaults returns the configuration used for unset fields.
func Defaults() Config {
	return Config{
		Dir:    "themes",
		Prefix: "spark",
		Out:    filepath.Join("dist", "tokens.css"),
		Serve:  ServeConfig{Port: 8080},
		Redis:  RedisConfig{Prefix: "spark:css:", TTL: time.Hour},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML or JSON configuration file and fills unset fields from
// Defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := decode(path, data, &cfg); err != nil {
			return nil, err
		}
	}

	if err := ApplyDefaults(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills the zero fields of cfg from Defaults.
func ApplyDefaults(cfg *Config) error {
	if err := mergo.Merge(cfg, Defaults()); err != nil {
		return fmt.Errorf("failed to apply config defaults: %w", err)
	}
	return nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return nil
	}
	// Default to YAML
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
