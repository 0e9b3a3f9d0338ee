/**
 * @description
 * This package handles the configuration management for the performance-tests
 * kit. It uses the Viper library to read configuration from environment
 * variables, providing a centralized and straightforward way to manage
 * settings for the gateway transport and the load runner.
 *
 * @dependencies
 * - github.com/spf13/viper: A popular library for Go application configuration.
 */
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all the configuration variables for the kit.
// These values are loaded from environment variables.
type Config struct {
	GatewayAPIBaseURL   string `mapstructure:"GATEWAY_API_BASE_URL"`
	GatewayAPIKey       string `mapstructure:"GATEWAY_API_KEY"`
	HTTPTimeoutSeconds  int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	LoadUsers           int    `mapstructure:"LOAD_USERS"`
	LoadDurationSeconds int    `mapstructure:"LOAD_DURATION_SECONDS"`
	LoadWaitMinMillis   int    `mapstructure:"LOAD_WAIT_MIN_MS"`
	LoadWaitMaxMillis   int    `mapstructure:"LOAD_WAIT_MAX_MS"`
	LoadScenario        string `mapstructure:"LOAD_SCENARIO"`
	LoadCronSchedule    string `mapstructure:"LOAD_CRON_SCHEDULE"`
}

// HTTPTimeout returns the transport timeout as a duration.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// LoadDuration returns the load run duration as a duration.
func (c Config) LoadDuration() time.Duration {
	return time.Duration(c.LoadDurationSeconds) * time.Second
}

// WaitMin returns the minimum inter-task wait as a duration.
func (c Config) WaitMin() time.Duration {
	return time.Duration(c.LoadWaitMinMillis) * time.Millisecond
}

// WaitMax returns the maximum inter-task wait as a duration.
func (c Config) WaitMax() time.Duration {
	return time.Duration(c.LoadWaitMaxMillis) * time.Millisecond
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (config Config, err error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values. An empty base URL tells the binaries to spin up the
	// in-process fake gateway instead of targeting a real deployment.
	v.SetDefault("GATEWAY_API_BASE_URL", "")
	v.SetDefault("GATEWAY_API_KEY", "")
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	v.SetDefault("LOAD_USERS", 10)
	v.SetDefault("LOAD_DURATION_SECONDS", 60)
	v.SetDefault("LOAD_WAIT_MIN_MS", 1000)
	v.SetDefault("LOAD_WAIT_MAX_MS", 3000)
	v.SetDefault("LOAD_SCENARIO", "accounts")
	v.SetDefault("LOAD_CRON_SCHEDULE", "")

	// Bind environment variables explicitly to ensure they appear in Unmarshal.
	_ = v.BindEnv("GATEWAY_API_BASE_URL")
	_ = v.BindEnv("GATEWAY_API_KEY")
	_ = v.BindEnv("HTTP_TIMEOUT_SECONDS")
	_ = v.BindEnv("LOAD_USERS")
	_ = v.BindEnv("LOAD_DURATION_SECONDS")
	_ = v.BindEnv("LOAD_WAIT_MIN_MS")
	_ = v.BindEnv("LOAD_WAIT_MAX_MS")
	_ = v.BindEnv("LOAD_SCENARIO")
	_ = v.BindEnv("LOAD_CRON_SCHEDULE")

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	config.GatewayAPIBaseURL = strings.TrimSpace(config.GatewayAPIBaseURL)
	config.LoadScenario = strings.ToLower(strings.TrimSpace(config.LoadScenario))

	if config.HTTPTimeoutSeconds <= 0 {
		config.HTTPTimeoutSeconds = 30
	}
	if config.LoadUsers <= 0 {
		config.LoadUsers = 10
	}
	if config.LoadDurationSeconds <= 0 {
		config.LoadDurationSeconds = 60
	}
	if config.LoadWaitMinMillis < 0 {
		config.LoadWaitMinMillis = 0
	}
	if config.LoadWaitMaxMillis < config.LoadWaitMinMillis {
		err = fmt.Errorf("LOAD_WAIT_MAX_MS (%d) must be >= LOAD_WAIT_MIN_MS (%d)",
			config.LoadWaitMaxMillis, config.LoadWaitMinMillis)
		return
	}

	return
}
