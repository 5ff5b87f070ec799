package main

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/calcterm/internal/app/session"
	"github.com/alexisbeaulieu97/calcterm/internal/calculator"
	"github.com/alexisbeaulieu97/calcterm/internal/config"
	"github.com/alexisbeaulieu97/calcterm/internal/logger"
	"github.com/alexisbeaulieu97/calcterm/internal/store"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config      *config.Config
	Logger      *logger.Logger
	History     *store.History
	Preferences *store.Preferences
	Formatter   *calculator.Formatter

	closers []io.Closer
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	path := flags.configPath
	required := path != ""
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return nil, newCommandError("load configuration", "determining config path", err, "Ensure your HOME directory is set correctly.")
		}
		path = defaultPath
	}

	cfg, err := config.Load(path, required, config.Overrides{
		DataDir:  flags.dataDir,
		Storage:  flags.storage,
		Locale:   flags.locale,
		LogLevel: flags.logLevel,
	})
	if err != nil {
		return nil, newCommandError("load configuration", path, err, "Fix the configuration file or the CALCTERM_* environment variables.")
	}
	return cfg, nil
}

// newAppContext opens the configured storage backend and builds the shared services.
func newAppContext(cfg *config.Config, log *logger.Logger) (*AppContext, error) {
	backend, err := store.Open(store.Kind(cfg.Storage), cfg.DataDir)
	if err != nil {
		return nil, newCommandError("open storage", fmt.Sprintf("%s backend in %s", cfg.Storage, cfg.DataDir), err, "Check data directory permissions or choose another --storage backend.")
	}

	formatter, err := calculator.NewFormatter(cfg.Locale)
	if err != nil {
		_ = backend.Close()
		return nil, newCommandError("configure display", "parsing locale "+cfg.Locale, err, "Use a BCP 47 tag such as en, de or fr-CA.")
	}

	log.Debug("storage opened", "backend", cfg.Storage, "data_dir", cfg.DataDir)

	return &AppContext{
		Config:      cfg,
		Logger:      log,
		History:     store.NewHistory(backend),
		Preferences: store.NewPreferences(backend),
		Formatter:   formatter,
		closers:     []io.Closer{backend},
	}, nil
}

// AddCloser registers c to be closed with the context.
func (a *AppContext) AddCloser(c io.Closer) {
	a.closers = append(a.closers, c)
}

// NewSession builds the calculator session for one host UI.
func (a *AppContext) NewSession() *session.Service {
	return session.New(a.Formatter, a.History, a.Preferences, a.Logger.With("component", "session"))
}

// Close releases the backend and any registered resources.
func (a *AppContext) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// openCLIApp loads configuration and logs to w. Commands stay at warn unless
// --log-level or --verbose asks for more.
func openCLIApp(flags *rootFlags, w io.Writer) (*AppContext, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	level := "warn"
	if flags.logLevel != "" {
		level = cfg.Log.Level
	}
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: flags.verbose, Writer: w})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return newAppContext(cfg, log)
}
