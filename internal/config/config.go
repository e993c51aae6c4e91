package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTUserSecret string `env:"JWT_USER_SECRET"`
	// KafkaBrokers список брокеров через запятую. Пустое значение отключает
	// публикацию событий заказов.
	KafkaBrokers    string        `env:"KAFKA_BROKERS"`
	KafkaTopic      string        `env:"KAFKA_TOPIC"`
	SweeperInterval time.Duration `env:"SWEEPER_INTERVAL"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTUserSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

// BrokerList разбирает KafkaBrokers; nil если брокеры не заданы.
func (c *Config) BrokerList() []string {
	if c.KafkaBrokers == "" {
		return nil
	}
	parts := strings.Split(c.KafkaBrokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			brokers = append(brokers, trimmed)
		}
	}
	return brokers
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT secret for user tokens")
	flag.StringVar(&flagConfig.KafkaBrokers, "k", "", "Comma separated kafka brokers")
	flag.StringVar(&flagConfig.KafkaTopic, "t", "order-events", "Kafka topic for order events")
	flag.DurationVar(&flagConfig.SweeperInterval, "s", time.Minute, "Expired orders sweep interval")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	interval := envConfig.SweeperInterval
	if interval == 0 {
		interval = flagsConfig.SweeperInterval
	}
	return &Config{
		RunAddress:      defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:     defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:   defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret:   defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		KafkaBrokers:    defaultIfBlank(envConfig.KafkaBrokers, flagsConfig.KafkaBrokers),
		KafkaTopic:      defaultIfBlank(envConfig.KafkaTopic, flagsConfig.KafkaTopic),
		SweeperInterval: interval,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
