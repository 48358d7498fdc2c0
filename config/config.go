package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Janitor  Janitor
}

type Server struct {
	Port string
}
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Janitor controls the background sweep that abandons stale active sessions.
type Janitor struct {
	SweepIntervalMinutes int
	MaxSessionAgeMinutes int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("JANITOR_SWEEP_INTERVAL_MINUTES", 15)
	viper.SetDefault("JANITOR_MAX_SESSION_AGE_MINUTES", 180)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Janitor.SweepIntervalMinutes = viper.GetInt("JANITOR_SWEEP_INTERVAL_MINUTES")
	config.Janitor.MaxSessionAgeMinutes = viper.GetInt("JANITOR_MAX_SESSION_AGE_MINUTES")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil

}
