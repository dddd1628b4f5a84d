package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string   `mapstructure:"PORT"`
	DatabasePath                  string   `mapstructure:"DATABASE_PATH"`
	JWTSecret                     string   `mapstructure:"JWT_SECRET"`
	DiscordBotToken               string   `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string   `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	RedisURL                      string   `mapstructure:"REDIS_URL"`
	RedisChannel                  string   `mapstructure:"REDIS_CHANNEL"`
	EnableCORS                    bool     `mapstructure:"ENABLE_CORS"`
	CORSAllowedOrigins            []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	SeedDemoData                  bool     `mapstructure:"SEED_DEMO_DATA"`
	LogLevel                      string   `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	// In-memory by default: state lives as long as the process.
	viper.SetDefault("DATABASE_PATH", ":memory:")
	viper.SetDefault("REDIS_CHANNEL", "campus_events")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://127.0.0.1:5173"})
	viper.SetDefault("SEED_DEMO_DATA", true)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.BindEnv("DATABASE_PATH")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("REDIS_URL")
	viper.BindEnv("REDIS_CHANNEL")
	viper.BindEnv("ENABLE_CORS")
	viper.BindEnv("CORS_ALLOWED_ORIGINS")
	viper.BindEnv("SEED_DEMO_DATA")
	viper.BindEnv("LOG_LEVEL")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
