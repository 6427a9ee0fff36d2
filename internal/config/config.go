package config

import (
	"log/slog"

	"github.com/hngpack/packaging-svc/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func MustInit() {
	if err := godotenv.Load("./.env"); err != nil {
		slog.Warn("No .env file loaded, relying on process environment", "error", err)
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/packaging-svc")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		panic("error while reading config file: " + err.Error())
	}

	// The serving port comes from the environment, config.yaml only
	// carries the fallback.
	if err := viper.BindEnv("server.http.port", "PORT"); err != nil {
		panic("error while binding PORT: " + err.Error())
	}
	viper.SetDefault("server.http.port", "8000")

	SetupLogger()
}

func SetupLogger() {
	handler := logger.NewHandler(nil)
	log := slog.New(handler)
	slog.SetDefault(log)
}
