package peerscore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

const (
	ConfigFileName = "config.json"
	EnvPrefix      = "PEERSCORE"
)

// Config is the persisted user configuration.
type Config struct {
	// ExcludeColumns is the raw column list, e.g. "A,B,C".
	ExcludeColumns string
	// Configured is set when ExcludeColumns came from the file or the
	// environment, even if empty.
	Configured bool
}

type fileConfig struct {
	ExcludeColumns *string `json:"exclude_columns,omitempty"`
}

type envConfig struct {
	ExcludeColumns string `envconfig:"EXCLUDE_COLUMNS"`
}

// DefaultConfigPath is config.json next to the running executable.
func DefaultConfigPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), ConfigFileName), nil
}

// LoadConfig reads the configuration file at path. A missing file is an
// empty, unconfigured Config. PEERSCORE_EXCLUDE_COLUMNS, when set and
// non-empty, overrides the file.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	bs, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, &Error{Kind: KindConfig, Op: "load config", Err: err}
	default:
		var fc fileConfig
		if err := json.Unmarshal(bs, &fc); err != nil {
			return Config{}, &Error{Kind: KindConfig, Op: "load config", Err: err}
		}
		if fc.ExcludeColumns != nil {
			cfg.ExcludeColumns = *fc.ExcludeColumns
			cfg.Configured = true
		}
	}

	var env envConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Config{}, &Error{Kind: KindConfig, Op: "load config", Err: err}
	}
	if env.ExcludeColumns != "" {
		cfg.ExcludeColumns = env.ExcludeColumns
		cfg.Configured = true
	}

	return cfg, nil
}

// SaveConfig writes cfg to path.
func SaveConfig(path string, cfg Config) error {
	bs, err := json.MarshalIndent(fileConfig{ExcludeColumns: &cfg.ExcludeColumns}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(bs, '\n'), 0o644); err != nil {
		return &Error{Kind: KindConfig, Op: "save config", Err: err}
	}
	return nil
}

// Columns parses the configured column list.
func (c Config) Columns() (ColumnSet, error) {
	return ParseColumns(c.ExcludeColumns)
}
