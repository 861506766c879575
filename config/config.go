package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values. It is loaded once in main and passed
// explicitly into each component's constructor; pipeline code never reads
// ambient process state.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration (hotel lookup cache).
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisHotelCacheDB int    `mapstructure:"REDIS_HOTEL_CACHE_DB"`
	HotelCacheTTLMin  int    `mapstructure:"HOTEL_CACHE_TTL_MIN"`

	// Text generation service.
	GeminiAPIKey     string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel      string `mapstructure:"GEMINI_MODEL"`
	GenerateTimeoutS int    `mapstructure:"GENERATE_TIMEOUT_SECONDS"`

	// Travelpayouts price services (flights + hotels).
	TravelpayoutsToken string `mapstructure:"TRAVELPAYOUTS_API_KEY"`
	AffiliateMarker    string `mapstructure:"AFFILIATE_MARKER"`
	Currency           string `mapstructure:"CURRENCY"`
	LookupTimeoutS     int    `mapstructure:"LOOKUP_TIMEOUT_SECONDS"`
}

// Load initializes Viper to load config values from env, file, or defaults.
func Load() *Config {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "tripweaver")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_HOTEL_CACHE_DB", 0)
	viper.SetDefault("HOTEL_CACHE_TTL_MIN", 30)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("GENERATE_TIMEOUT_SECONDS", 60)
	viper.SetDefault("TRAVELPAYOUTS_API_KEY", "")
	viper.SetDefault("AFFILIATE_MARKER", "659627")
	viper.SetDefault("CURRENCY", "USD")
	viper.SetDefault("LOOKUP_TIMEOUT_SECONDS", 15)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return &cfg
}

// IsProduction checks if the environment is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
