package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example YAML/ENV equivalent:
//
//	EXCHANGE_NAME=GBCE
//	VWSP_WINDOW_MINUTES=5
type Config struct {
	Exchange ExchangeConfig // Exchange-level settings
}

// ExchangeConfig holds exchange-level settings.
//
// Fields:
//   - Name: display name of the exchange (used in report output).
//   - VWSPWindowMinutes: length in minutes of the trailing window used by
//     the volume-weighted stock price. The reference behavior is 5 minutes.
type ExchangeConfig struct {
	Name              string
	VWSPWindowMinutes int
}

// Window returns the VWSP trailing window as a duration.
func (c ExchangeConfig) Window() time.Duration {
	return time.Duration(c.VWSPWindowMinutes) * time.Minute
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read throughout the application
// instead of reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig()
//     terminates the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("EXCHANGE_NAME", "GBCE")
	viper.SetDefault("VWSP_WINDOW_MINUTES", 5)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Exchange: ExchangeConfig{
			Name:              viper.GetString("EXCHANGE_NAME"),
			VWSPWindowMinutes: viper.GetInt("VWSP_WINDOW_MINUTES"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and sane, and
// terminates the application if they are not.
func validateConfig() {
	var missing []string

	if AppConfig.Exchange.Name == "" {
		missing = append(missing, "EXCHANGE_NAME")
	}
	if AppConfig.Exchange.VWSPWindowMinutes < 1 {
		missing = append(missing, "VWSP_WINDOW_MINUTES (must be >= 1)")
	}

	if len(missing) > 0 {
		log.Fatalf("Missing or invalid environment variables: %v\n", missing)
	}
}
