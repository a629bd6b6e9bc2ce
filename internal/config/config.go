package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `yaml:"env"`
	Http     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Gateway  GatewayConfig  `yaml:"gateway"`
	Worker   WorkerConfig   `yaml:"worker"`
	Checkout CheckoutConfig `yaml:"checkout"`
}

type HTTPConfig struct {
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type PostgresConfig struct {
	PostgresURL    string `env:"POSTGRES_URL"`
	MigrationsPath string `yaml:"migrations_path" env-default:"migrations"`
}

type RedisConfig struct {
	Addrs    []string `yaml:"addrs"`
	Password string   `yaml:"password"`
	DBRedis  int      `yaml:"db_redis"`
}

type KafkaConfig struct {
	BrokerList []string `yaml:"brokers"`
	Topic      string   `yaml:"topic"`
}

type GatewayConfig struct {
	// approve settles everything; simulate behaves like a flaky acquirer
	Mode string `yaml:"mode" env-default:"approve"`
}

type WorkerConfig struct {
	Interval   time.Duration `yaml:"interval" env-default:"30s"`
	StuckAfter time.Duration `yaml:"stuck_after" env-default:"1m"`
}

type CheckoutConfig struct {
	IdempotencyTTL time.Duration `yaml:"idempotency_ttl" env-default:"24h"`
	TemplatesDir   string        `yaml:"templates_dir" env-default:"templates"`
}

func LoadConfig() (*Config, error) {
	configPath := fetchConfigPath()

	if configPath == "" {
		return nil, fmt.Errorf("config file is empty")
	}

	return LoadPath(configPath)
}

func LoadPath(configPath string) (*Config, error) {
	// a missing .env is fine; the environment may already be set
	_ = godotenv.Load()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %v", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read the config: %w", err)
	}

	cfg.Postgres.PostgresURL = os.Getenv("POSTGRES_URL")

	return &cfg, nil
}

func fetchConfigPath() string {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to configPath")
	flag.Parse()

	if configPath == "" {
		configPath = "local.yaml"
	}
	return configPath
}
