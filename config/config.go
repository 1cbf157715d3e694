package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig
	Inventory   InventoryConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// InventoryConfig holds the fixed values of the inventory engine.
type InventoryConfig struct {
	// EscalationContact is the address named in low-stock alert details.
	EscalationContact string
	// SuccessNotificationTTL is how long a success notification stays
	// before auto-dismissal.
	SuccessNotificationTTL time.Duration
	// SeedDemoData loads the built-in demo items at startup.
	SeedDemoData bool
	// RateLimitPerMin caps mutating API requests per client IP.
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Inventory.EscalationContact = viper.GetString("inventory.escalation_contact")
	cfg.Inventory.SuccessNotificationTTL = viper.GetDuration("inventory.success_notification_ttl")
	cfg.Inventory.SeedDemoData = viper.GetBool("inventory.seed_demo_data")
	cfg.Inventory.RateLimitPerMin = viper.GetInt("inventory.rate_limit_per_min")

	if cfg.Inventory.EscalationContact == "" {
		return nil, fmt.Errorf("inventory.escalation_contact must be configured")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("inventory.escalation_contact", "warehouse.manager@example.com")
	viper.SetDefault("inventory.success_notification_ttl", "5s")
	viper.SetDefault("inventory.seed_demo_data", true)
	viper.SetDefault("inventory.rate_limit_per_min", 120)
}
