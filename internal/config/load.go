package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional selene.yaml in the working
// directory and from SELENE_-prefixed environment variables. Environment
// variables take precedence over file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("database.path", "data/selene.db")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("app.week_start_offset", 1)
	v.SetDefault("app.default_profile_name", "Default")
	v.SetDefault("cycle.luteal_phase_days", 14)
	v.SetDefault("cycle.fertile_days_before", 5)
	v.SetDefault("cycle.fertile_days_after", 1)
	v.SetDefault("cycle.recent_cycles", 6)
	v.SetDefault("insights.window_days", 120)
	v.SetDefault("insights.min_classified_days", 30)
	v.SetDefault("insights.min_lift", 1.5)
	v.SetDefault("insights.max_insights", 4)

	v.SetConfigName("selene")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("SELENE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
