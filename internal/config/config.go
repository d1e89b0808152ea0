package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Seed     SeedConfig
}

// ServerConfig defines the HTTP listener settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// DatabaseConfig defines the SQLite store settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// SessionConfig defines the login session settings.
type SessionConfig struct {
	Secret     string `mapstructure:"secret"`
	TTLMinutes int    `mapstructure:"ttl_minutes"`
}

// SeedConfig defines the initial administrator account created on first run.
type SeedConfig struct {
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
}

// Load reads configuration from file or environment variables. Every key has
// a default, so a missing config file is not an error.
func Load(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("poseidon")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.path", "poseidon.db")
	viper.SetDefault("session.secret", "poseidon-secret-key")
	viper.SetDefault("session.ttl_minutes", 30)
	viper.SetDefault("seed.admin_username", "admin")
	viper.SetDefault("seed.admin_password", "admin")

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
