// Package app provides the application context for the bracketfix CLI:
// configuration, logging, and lifecycle, centralized so commands stay thin.
package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// App carries the bracketfix CLI dependencies.
type App struct {
	version string

	config *Config
	logger *zerolog.Logger
}

// Option customizes an App.
type Option func(*App) error

// New creates an App with configuration loaded from flags, environment,
// .env files, and the optional config file.
func New(version string, opts ...Option) (*App, error) {
	app := &App{version: version}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the CLI version string.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// RefreshLogger rebuilds the logger after flag parsing updated the config.
func (a *App) RefreshLogger() {
	logger := NewLogger(a.config)
	a.logger = &logger
}

// SetConfigFile loads an explicitly named config file. Unlike the implicit
// search during startup, a file the user asked for must exist.
func (a *App) SetConfigFile(path string) error {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	a.config = configFromViper()
	a.RefreshLogger()
	return nil
}

// WithLogger overrides the logger (used by tests).
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// ExitOnError prints the error and exits with a non-zero status.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
