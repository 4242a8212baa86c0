package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port int    `env:"PORT" envDefault:"3009"`
	Env  string `env:"STOCKSUGGEST_ENV" envDefault:"dev"`
}

func MustLoad() Config {
	// missing .env is fine - env vars may be set directly
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
