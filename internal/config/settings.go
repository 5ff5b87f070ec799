package config

import (
	"os"
	"path/filepath"
)

const (
	appDirName     = ".calcterm"
	configFileName = "config.yaml"
	logFileName    = "calcterm.log"
)

// Config is the calcterm settings document.
type Config struct {
	DataDir string `yaml:"data_dir,omitempty" env:"CALCTERM_DATA_DIR" validate:"required"`
	Storage string `yaml:"storage,omitempty" env:"CALCTERM_STORAGE" validate:"required,oneof=file sqlite memory"`
	Locale  string `yaml:"locale,omitempty" env:"CALCTERM_LOCALE" validate:"required,locale"`
	Log     Log    `yaml:"log,omitempty"`
}

// Log configures the zerolog output.
type Log struct {
	Level string `yaml:"level,omitempty" env:"CALCTERM_LOG_LEVEL" validate:"required,loglevel"`
	// File receives interactive-session logs. Empty means <data_dir>/calcterm.log.
	File string `yaml:"file,omitempty" env:"CALCTERM_LOG_FILE"`
}

// Default returns the built-in settings rooted at the user's home directory.
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		DataDir: filepath.Join(home, appDirName),
		Storage: "file",
		Locale:  "en",
		Log:     Log{Level: "info"},
	}, nil
}

// DefaultPath returns the config file location used when --config is not given.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName, configFileName), nil
}

// LogFile returns the file interactive sessions log to.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(c.DataDir, logFileName)
}
