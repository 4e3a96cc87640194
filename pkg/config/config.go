package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"reception/pkg/logger"
)

var reRegion = regexp.MustCompile(`^[A-Z]{2}$`)

type Config struct {
	LogLevel  string
	LogFormat string

	PhoneRegion string
	Currency    string

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	cfg := &Config{
		LogLevel:  strings.ToLower(getEnvStr(EnvLogLevel, DefaultLogLevel)),
		LogFormat: strings.ToLower(getEnvStr(EnvLogFormat, DefaultLogFormat)),

		PhoneRegion: strings.ToUpper(getEnvStr(EnvPhoneRegion, DefaultPhoneRegion)),
		Currency:    getEnvStr(EnvCurrency, DefaultCurrency),
	}
	cfg.Log = logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
	})

	err := cfg.Validate()
	if err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errors []string

	switch cfg.LogLevel {
	case logger.DEBUG, logger.INFO, logger.WARN, logger.ERROR:
	default:
		errors = append(errors, fmt.Sprintf("LogLevel must be one of debug, info, warn, error, got: %s", cfg.LogLevel))
	}

	if cfg.LogFormat != logger.JSON && cfg.LogFormat != logger.TEXT {
		errors = append(errors, fmt.Sprintf("LogFormat must be json or text, got: %s", cfg.LogFormat))
	}

	if !reRegion.MatchString(cfg.PhoneRegion) {
		errors = append(errors, fmt.Sprintf("PhoneRegion must be a two-letter ISO 3166 code, got: %s", cfg.PhoneRegion))
	}

	if strings.TrimSpace(cfg.Currency) == "" {
		errors = append(errors, "Currency cannot be empty")
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Debug("Configuration loaded successfully",
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"phone_region", cfg.PhoneRegion,
		"currency", cfg.Currency,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
