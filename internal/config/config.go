package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Market   Market   `mapstructure:"market"`
	Trading  Trading  `mapstructure:"trading"`
	Logger   Logger   `mapstructure:"logger"`
	Server   Server   `mapstructure:"server"`
	Database Database `mapstructure:"database"`
	Bots     []Bot    `mapstructure:"bots"`
}

// Market holds the configuration for the market data API.
type Market struct {
	BaseURL        string  `mapstructure:"base_url"`
	VsCurrency     string  `mapstructure:"vs_currency"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

// Server holds the configuration for the dashboard web server.
type Server struct {
	Port int `mapstructure:"port"`
}

// Database holds the configuration for the database.
type Database struct {
	DSN string `mapstructure:"dsn"`
}

// Trading holds the configuration for the evaluation loop.
type Trading struct {
	TickInterval int `mapstructure:"tick_interval"`
	ApiPort      int `mapstructure:"api_port"`
}

// Bot describes a paper-trading bot to seed into the database on startup.
type Bot struct {
	Name            string   `mapstructure:"name"`
	Strategy        string   `mapstructure:"strategy"`
	Symbols         []string `mapstructure:"symbols"`
	PaperBalance    float64  `mapstructure:"paper_balance"`
	MaxPositionSize float64  `mapstructure:"max_position_size"`
	RiskLevel       string   `mapstructure:"risk_level"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or yaml, json

	// Allow environment variables to override config file
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("market.base_url", "https://api.coingecko.com/api/v3")
	viper.SetDefault("market.vs_currency", "aud")
	viper.SetDefault("market.rate_limit", 10)      // requests per second
	viper.SetDefault("market.rate_limit_burst", 5) // burst size
	viper.SetDefault("trading.tick_interval", 60)  // seconds

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
