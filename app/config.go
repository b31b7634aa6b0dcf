package app

import (
	"github.com/joefazee/atlas/app/countries"
	"github.com/joefazee/atlas/app/database"
	"github.com/joefazee/atlas/internal/nexus"
)

type Config struct {
	DB        database.Config
	Countries countries.Config

	AppHost string `env:"APP_HOST" env-default:"localhost"`
	AppPort string `env:"APP_PORT" env-default:"8080"`
	Env     string `env:"APP_ENV" env-default:"development"`

	// CacheBackend selects where the rendered summary artifact lives.
	CacheBackend  string `env:"CACHE_BACKEND" env-default:"memory"`
	RedisAddr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`
	RedisPassword string `env:"REDIS_PASSWORD"`
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader().Load(c)
	return c, err
}
