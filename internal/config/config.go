package config

import (
	"fmt"
	"time"

	"github.com/venturearena/backend/pkg/mq"
	"github.com/venturearena/backend/pkg/mysql"
	"github.com/spf13/viper"
)

type Config struct {
	API      API          `mapstructure:"api"`
	Database mysql.Config `mapstructure:"database"`
	RabbitMQ mq.Config    `mapstructure:"rabbitmq"`
	Auth     Auth         `mapstructure:"auth"`
	Game     Game         `mapstructure:"game"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Auth struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type Game struct {
	StartingBalance   int64   `mapstructure:"starting_balance"`
	DefaultMultiplier float64 `mapstructure:"default_multiplier"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetDefault("auth.token_ttl", 24*time.Hour)
	viper.SetDefault("game.starting_balance", 1_000_000)
	viper.SetDefault("game.default_multiplier", 2.0)

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
