package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Single fixed display timezone for the whole deployment.
	TimezoneID    string `mapstructure:"TIMEZONE_ID"`
	TimezoneLabel string `mapstructure:"TIMEZONE_LABEL"`

	// First day of the week in availability views: "sunday" or "monday".
	WeekStart string `mapstructure:"WEEK_START"`

	// Visible day-view window and its vertical scale.
	GridWindowStart string `mapstructure:"GRID_WINDOW_START"` // "HH:MM"
	GridWindowEnd   string `mapstructure:"GRID_WINDOW_END"`   // "HH:MM"
	PixelsPerHour   int    `mapstructure:"PIXELS_PER_HOUR"`

	// Max rendered items per month-view cell before "+N more".
	MonthCellCap int `mapstructure:"MONTH_CELL_CAP"`

	// Clock style for display formatting.
	Use12HourClock bool `mapstructure:"USE_12H_CLOCK"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TIMEZONE_ID", "Asia/Beirut")
	viper.SetDefault("TIMEZONE_LABEL", "Beirut (GMT+3)")
	viper.SetDefault("WEEK_START", "sunday")
	viper.SetDefault("GRID_WINDOW_START", "09:00")
	viper.SetDefault("GRID_WINDOW_END", "21:00")
	viper.SetDefault("PIXELS_PER_HOUR", 80)
	viper.SetDefault("MONTH_CELL_CAP", 3)
	viper.SetDefault("USE_12H_CLOCK", true)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
