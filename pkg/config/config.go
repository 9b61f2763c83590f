package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/stockmarket/notifier/pkg/postgresql"
	"github.com/stockmarket/notifier/pkg/redis"
)

// Config represents the application configuration.
type Config struct {
	App        AppConfig         `envPrefix:"APP_"`
	OrderKafka OrderKafkaConfig  `envPrefix:"ORDER_KAFKA_"`
	MatchKafka MatchKafkaConfig  `envPrefix:"MATCH_KAFKA_"`
	EventKafka EventKafkaConfig  `envPrefix:"EVENT_KAFKA_"`
	Redis      redis.Config      `envPrefix:"REDIS_"`
	Postgres   postgresql.Config `envPrefix:"POSTGRES_"`
	Notifier   NotifierConfig    `envPrefix:"NOTIFIER_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name            string        `env:"NAME" envDefault:"stock-notifier"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	Port            int           `env:"PORT" envDefault:"8080"`
	GRPCPort        int           `env:"GRPC_PORT" envDefault:"8880"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// OrderKafkaConfig is the topic carrying order book changes.
type OrderKafkaConfig struct {
	Brokers       []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic         string   `env:"TOPIC" envDefault:"orders"`
	ConsumerGroup string   `env:"CONSUMER_GROUP" envDefault:"stock-notifier"`
}

// MatchKafkaConfig is the topic carrying executed trades.
type MatchKafkaConfig struct {
	Brokers       []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic         string   `env:"TOPIC" envDefault:"matches"`
	ConsumerGroup string   `env:"CONSUMER_GROUP" envDefault:"stock-notifier"`
}

// EventKafkaConfig is the topic stock events are published to.
type EventKafkaConfig struct {
	Enabled      bool          `env:"ENABLED" envDefault:"true"`
	Brokers      []string      `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic        string        `env:"TOPIC" envDefault:"stock-events"`
	BatchTimeout time.Duration `env:"BATCH_TIMEOUT" envDefault:"10ms"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
}

// NotifierConfig tunes local subscriptions.
type NotifierConfig struct {
	Buffer int `env:"BUFFER" envDefault:"64"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
