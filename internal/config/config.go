package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultJWTSecret is used when JWT_SECRET is not set. The server logs a warning when it is in effect.
const DefaultJWTSecret = "calorie-tracker-secret-key-change-me"

// Config holds application level configuration loaded from file, environment and flags.
type Config struct {
	ServerPort      string
	AppEnv          string
	DBDriver        string
	DBDSN           string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	JWTSecret       string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
	SeedOnStart     bool
	SwaggerHost     string
}

// UsingDefaultSecret reports whether the built-in JWT secret is active.
func (c *Config) UsingDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// NewViper returns a viper instance with defaults and environment binding applied.
// Flags may be bound onto it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("server_port", "3000")
	v.SetDefault("app_env", "production")
	v.SetDefault("db_driver", "sqlite")
	v.SetDefault("db_dsn", "app.db")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_password", "")
	v.SetDefault("jwt_secret", DefaultJWTSecret)
	v.SetDefault("token_ttl", 7*24*time.Hour)
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("seed_on_start", true)
	v.SetDefault("swagger_host", "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load builds Config. A .env file in the working directory is loaded first if present.
// configFile is optional; when empty, config.yaml is looked up in "." and "./config".
func Load(v *viper.Viper, configFile string) (*Config, error) {
	_ = godotenv.Load()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		ServerPort:      v.GetString("server_port"),
		AppEnv:          v.GetString("app_env"),
		DBDriver:        strings.ToLower(v.GetString("db_driver")),
		DBDSN:           v.GetString("db_dsn"),
		RedisAddr:       v.GetString("redis_addr"),
		RedisDB:         v.GetInt("redis_db"),
		RedisPass:       v.GetString("redis_password"),
		JWTSecret:       v.GetString("jwt_secret"),
		TokenTTL:        v.GetDuration("token_ttl"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		SeedOnStart:     v.GetBool("seed_on_start"),
		SwaggerHost:     v.GetString("swagger_host"),
	}, nil
}
