package cli

import (
	"github.com/aretw0/spark/internal/config"
)

// Options are the settings shared by every command: the loaded config file
// with command-line overrides applied.
type Options struct {
	Config *config.Config
	Debug  bool
}

// Overrides holds flag values that take precedence over the config file.
// Empty values leave the config untouched, except Prefix when PrefixSet is true.
type Overrides struct {
	Dir       string
	Prefix    string
	PrefixSet bool
	Redis     string
	Port      int
}

// LoadOptions reads the config file at path and applies the overrides.
func LoadOptions(path string, debug bool, o Overrides) (Options, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return Options{}, err
	}
	if o.Dir != "" {
		cfg.Dir = o.Dir
	}
	if o.Prefix != "" || o.PrefixSet {
		cfg.Prefix = o.Prefix
	}
	if o.Redis != "" {
		cfg.Redis.Addr = o.Redis
	}
	if o.Port != 0 {
		cfg.Serve.Port = o.Port
	}
	if debug {
		cfg.Log.Level = "debug"
	}
	return Options{Config: cfg, Debug: debug}, nil
}
