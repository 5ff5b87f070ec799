package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	calcerrors "github.com/alexisbeaulieu97/calcterm/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Overrides carries command-line values; empty fields leave the loaded value alone.
type Overrides struct {
	DataDir  string
	Storage  string
	Locale   string
	LogLevel string
}

// Load builds the effective configuration: defaults, then the YAML file at
// path, then CALCTERM_* environment variables, then overrides. A missing file
// is only an error when required is set (the user passed --config).
func Load(path string, required bool, overrides Overrides) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	if path != "" {
		if err := mergeFile(cfg, path, required); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, calcerrors.NewValidationError("env", err.Error(), err)
	}

	applyOverrides(cfg, overrides)
	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.Log.File = expandHome(cfg.Log.File)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return calcerrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return calcerrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func applyOverrides(cfg *Config, o Overrides) {
	if o.DataDir != "" {
		cfg.DataDir = o.DataDir
	}
	if o.Storage != "" {
		cfg.Storage = strings.ToLower(o.Storage)
	}
	if o.Locale != "" {
		cfg.Locale = o.Locale
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
