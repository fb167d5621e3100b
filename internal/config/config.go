package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type PedidoConfig struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	PedidoDB   `yaml:"pedido_db"`
	LogConfig  `yaml:"log_config"`
	Kafka      `yaml:"kafka"`
	Migrations `yaml:"migrations"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type PedidoDB struct {
	Dsn string `yaml:"dsn" env:"PEDIDO_DB_DSN"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
}

type Kafka struct {
	Host  string `yaml:"host" env:"KAFKA_HOST"`
	Port  string `yaml:"port" env:"KAFKA_PORT"`
	Topic string `yaml:"topic" env:"KAFKA_TOPIC" env-default:"pedido-notifications"`
}

type Migrations struct {
	Path string `yaml:"path" env:"MIGRATIONS_PATH" env-default:"migrations"`
}

func MustLoad() *PedidoConfig {
	configPath := os.Getenv("PEDIDO_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("PEDIDO_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg PedidoConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
