package config

import (
	"fmt"
	"strconv"

	"firearm-inventory/internal/logger"
)

const (
	AppName    = "Cash America Firearm Inventory Tracker"
	AppID      = "com.cashamerica.firearminventory"
	AppVersion = "1.0.0"

	MinWindowWidth  = 480
	MinWindowHeight = 360
)

// Config holds the runtime settings of the application
type Config struct {
	LogLevel     string
	JSONLogs     bool
	WindowWidth  float32
	WindowHeight float32
}

func Default() Config {
	return Config{
		LogLevel:     "info",
		JSONLogs:     false,
		WindowWidth:  640,
		WindowHeight: 520,
	}
}

// FromEnv starts from Default and applies FIREARM_LOG_LEVEL,
// FIREARM_JSON_LOGS and DEBUG=1
func FromEnv(lookup func(string) string) Config {
	cfg := Default()

	if lookup("DEBUG") == "1" {
		cfg.LogLevel = "debug"
	}
	if level := lookup("FIREARM_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if raw := lookup("FIREARM_JSON_LOGS"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			cfg.JSONLogs = v
		}
	}

	return cfg
}

// Validate checks the log level and window size
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.WindowWidth < MinWindowWidth || c.WindowHeight < MinWindowHeight {
		return fmt.Errorf("config: window size %.0fx%.0f is below the %dx%d minimum",
			c.WindowWidth, c.WindowHeight, MinWindowWidth, MinWindowHeight)
	}
	return nil
}

// NewLogger builds the logger described by the config
func (c Config) NewLogger() (*logger.ZerologAdapter, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if c.JSONLogs {
		return logger.NewJSONLogger(level), nil
	}
	return logger.NewConsoleLogger(level), nil
}

func (c Config) String() string {
	return fmt.Sprintf("log_level=%s json_logs=%t window=%.0fx%.0f",
		c.LogLevel, c.JSONLogs, c.WindowWidth, c.WindowHeight)
}
