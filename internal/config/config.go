// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек сервиса.
type Config struct {
	Env                string `yaml:"env" env:"ENV" env-default:"local"`
	MongoConnection    `yaml:"mongo_connection"`
	RedisConnection    `yaml:"redis_connection"`
	RabbitMQConnection `yaml:"rabbitmq_connection"`
	HTTPServer         `yaml:"http_server"`
	JWTToken           `yaml:"jwttoken"`
	Stripe             `yaml:"stripe"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// MongoConnection структура для настройки подключения к MongoDB.
type MongoConnection struct {
	URI          string        `yaml:"uri" env:"MONGO_URI"`
	Database     string        `yaml:"database" env-default:"bistro"`
	TimeoutMongo time.Duration `yaml:"timeoutmongo" env-default:"10s"`
}

// RedisConnection структура для настройки подключения к redis.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"3s"`
}

// RabbitMQConnection структура для настройки подключения к RabbitMQ.
type RabbitMQConnection struct {
	URL string `yaml:"url" env:"RABBITMQ_URL"`
}

// JWTToken структура для работы с jwt-токеном.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"1h"`
}

// Stripe структура для настройки платёжного шлюза.
type Stripe struct {
	SecretKey string `yaml:"secret_key" env:"STRIPE_SECRET_KEY"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH, при ошибке завершает процесс.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
