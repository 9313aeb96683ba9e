package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const configEnv = "MINIPAS_CONFIG"

// Config holds the driver settings read from minipas.toml.
type Config struct {
	Log    LogConfig    `toml:"log"`
	REPL   REPLConfig   `toml:"repl"`
	Output OutputConfig `toml:"output"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type REPLConfig struct {
	Prompt      string `toml:"prompt"`
	Mode        string `toml:"mode"` // tui or line
	HistoryFile string `toml:"history_file"`
}

type OutputConfig struct {
	ScopeFormat string `toml:"scope_format"` // text or yaml
	ASTFormat   string `toml:"ast_format"`   // tree, yaml or spew
}

// loadConfig reads the configuration. An explicit path must exist; the
// implicit locations are optional and fall back to defaults.
func loadConfig(explicit string) (*Config, error) {
	cfg := &Config{}
	path, required := configPath(explicit)
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if required || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}
	applyDefaults(cfg)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func configPath(explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	if env := os.Getenv(configEnv); env != "" {
		return env, true
	}
	candidates := []string{"minipas.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "minipas", "config.toml"))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, false
		}
	}
	return "", false
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if cfg.REPL.Prompt == "" {
		cfg.REPL.Prompt = "calc> "
	}
	if cfg.REPL.Mode == "" {
		cfg.REPL.Mode = "line"
	}
	if cfg.REPL.HistoryFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.REPL.HistoryFile = filepath.Join(home, ".minipas_history")
		}
	}
	if cfg.Output.ScopeFormat == "" {
		cfg.Output.ScopeFormat = "text"
	}
	if cfg.Output.ASTFormat == "" {
		cfg.Output.ASTFormat = "tree"
	}
}

func (c *Config) validate() error {
	switch c.REPL.Mode {
	case "tui", "line":
	default:
		return fmt.Errorf("repl.mode: unknown mode %q", c.REPL.Mode)
	}
	switch c.Output.ScopeFormat {
	case "text", "yaml":
	default:
		return fmt.Errorf("output.scope_format: unknown format %q", c.Output.ScopeFormat)
	}
	switch c.Output.ASTFormat {
	case "tree", "yaml", "spew":
	default:
		return fmt.Errorf("output.ast_format: unknown format %q", c.Output.ASTFormat)
	}
	return nil
}
