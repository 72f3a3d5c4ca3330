package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyUUID    = key("uuid")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service    Service
	Postgres   Postgres
	Redis      Redis
	Centrifuge Centrifuge
	Storage    Storage
	Kafka      Kafka
	Logger     Logger
	Metrics    Metrics
	Platform   Platform
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"marketplace-service"`
	Port string `env:"SERVICE_PORT" env-default:"8080"`
}

type Postgres struct {
	User     string `env:"POSTGRES_USER" env-required:"true"`
	Password string `env:"POSTGRES_PASSWORD" env-required:"true"`
	Database string `env:"POSTGRES_DB" env-required:"true"`
	Host     string `env:"POSTGRES_HOST" env-required:"true"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
}

type Redis struct {
	Host string `env:"REDIS_HOST" env-required:"true"`
	Port string `env:"REDIS_PORT" env-default:"6379"`
}

type Centrifuge struct {
	BaseURL   string        `env:"CENTRIFUGO_BASE_URL" env-required:"true"`
	APIKey    string        `env:"CENTRIFUGO_API_KEY" env-required:"true"`
	JWTSecret string        `env:"CENTRIFUGO_JWT_SECRET" env-required:"true"`
	Timeout   time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

type Storage struct {
	BaseURL   string        `env:"STORAGE_BASE_URL" env-required:"true"`
	PublicURL string        `env:"STORAGE_PUBLIC_URL" env-required:"true"`
	APIKey    string        `env:"STORAGE_API_KEY" env-required:"true"`
	Timeout   time.Duration `env:"STORAGE_TIMEOUT" env-default:"30s"`
}

type Kafka struct {
	Host         string `env:"KAFKA_HOST"`
	Port         string `env:"KAFKA_PORT"`
	ProfileTopic string `env:"KAFKA_PROFILE_TOPIC" env-default:"profile_updated"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST"`
	Port string `env:"LOGGER_PORT"`
}

type Metrics struct {
	Host string `env:"METRICS_HOST"`
	Port int    `env:"METRICS_PORT"`
}

type Platform struct {
	Env          string `env:"PLATFORM_ENV" env-default:"dev"`
	AccessSecret string `env:"ACCESS_TOKEN_SECRET" env-required:"true"`
	AdminPIN     string `env:"ADMIN_PIN" env-required:"true"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	return cfg
}
