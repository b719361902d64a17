// Package config resolves CLI settings from defaults and an optional TOML file.
// Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/todolist/internal/store/jsonstore"
)

// DefaultConfigFile is picked up from the working directory when present.
const DefaultConfigFile = "todo.toml"

// Config holds every tunable setting.
type Config struct {
	File      string `toml:"file"`
	Theme     string `toml:"theme"`
	NoColor   bool   `toml:"no_color"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		File:      jsonstore.DefaultFileName,
		Theme:     "classic",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load returns defaults overlaid with a config file. An explicit path must
// exist; otherwise DefaultConfigFile in dir is used if it exists. The second
// return value is the file that was read, or "" when none was.
func Load(explicit, dir string) (Config, string, error) {
	cfg := Default()

	path := explicit
	if path == "" {
		candidate := filepath.Join(dir, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		} else if !errors.Is(err, fs.ErrNotExist) {
			return cfg, "", fmt.Errorf("stat %s: %w", candidate, err)
		}
	}
	if path == "" {
		return cfg, "", nil
	}
	if err := loadFile(&cfg, path); err != nil {
		return cfg, path, fmt.Errorf("loading config file %s: %w", path, err)
	}
	return cfg, path, nil
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if cfg.File == "" {
		cfg.File = jsonstore.DefaultFileName
	}
	return nil
}
