package config

import (
	"github.com/spf13/viper"
)

// Config carries the process-level settings. Everything is read from the
// environment with sane defaults so a bare `go run ./api` works against a
// local stack.
type Config struct {
	Addr          string
	DatabaseURL   string
	RedisAddr     string
	JWTSecret     string
	LogsDirectory string
}

func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("JWT_SECRET", "super-secret-key")
	v.SetDefault("LOGS_DIRECTORY", "logs")

	return Config{
		Addr:          v.GetString("ADDR"),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		LogsDirectory: v.GetString("LOGS_DIRECTORY"),
	}
}
