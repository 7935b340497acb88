package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Cycle    CycleConfig    `mapstructure:"cycle" validate:"required"`
	Insights InsightsConfig `mapstructure:"insights" validate:"required"`
}

// ServerConfig contains the HTTP listener settings.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,gt=0,lt=65536"`
}

// DatabaseConfig contains the SQLite storage settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// AppConfig contains profile and calendar presentation settings.
type AppConfig struct {
	Timezone           string `mapstructure:"timezone" validate:"required"`
	WeekStartOffset    int    `mapstructure:"week_start_offset" validate:"gte=0,lte=6"`
	DefaultProfileName string `mapstructure:"default_profile_name" validate:"required"`
}

// CycleConfig tunes the cycle geometry and summary math.
type CycleConfig struct {
	LutealPhaseDays   int `mapstructure:"luteal_phase_days" validate:"required,gt=0"`
	FertileDaysBefore int `mapstructure:"fertile_days_before" validate:"gte=0"`
	FertileDaysAfter  int `mapstructure:"fertile_days_after" validate:"gte=0"`
	RecentCycles      int `mapstructure:"recent_cycles" validate:"required,gt=0"`
}

// InsightsConfig tunes the symptom-phase correlation thresholds.
type InsightsConfig struct {
	WindowDays        int     `mapstructure:"window_days" validate:"required,gt=0"`
	MinClassifiedDays int     `mapstructure:"min_classified_days" validate:"gte=0"`
	MinLift           float64 `mapstructure:"min_lift" validate:"gt=0"`
	MaxInsights       int     `mapstructure:"max_insights" validate:"required,gt=0"`
}
