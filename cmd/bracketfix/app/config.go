package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/bodtour/bracketfix/pkg/reconcile"
	"github.com/bodtour/bracketfix/pkg/tournament"
)

// Config holds the application configuration loaded from flags, environment
// variables, .env files, and the optional config file.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Reconciliation policy
	WinningScoreThreshold   int
	LoserScoreCap           int
	DefaultSeedFallback     int
	PairedIdentitySeparator string
	PairingSizeDetection    bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.bracketfix.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("BRACKETFIX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	setDefaults()

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".bracketfix")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	return configFromViper(), nil
}

// configFromViper materializes the Config from the current viper state.
func configFromViper() *Config {
	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),

		ConfigFile: viper.ConfigFileUsed(),

		WinningScoreThreshold:   viper.GetInt("winning-score-threshold"),
		LoserScoreCap:           viper.GetInt("loser-score-cap"),
		DefaultSeedFallback:     viper.GetInt("default-seed-fallback"),
		PairedIdentitySeparator: viper.GetString("paired-identity-separator"),
		PairingSizeDetection:    viper.GetBool("pairing-size-detection"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	return config
}

// setDefaults registers the recognized options and their defaults.
func setDefaults() {
	viper.SetDefault("winning-score-threshold", reconcile.DefaultWinningThreshold)
	viper.SetDefault("loser-score-cap", reconcile.DefaultLoserCap)
	viper.SetDefault("default-seed-fallback", tournament.DefaultSeed)
	viper.SetDefault("paired-identity-separator", tournament.DefaultSeparator)
	viper.SetDefault("pairing-size-detection", true)
}

// loadEnvFiles loads .env files from the working directory. Missing files
// are fine; explicit settings in the environment win.
func loadEnvFiles() {
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err == nil {
			_ = godotenv.Load(name)
		}
	}
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
