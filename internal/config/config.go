package config

import (
	"fmt"
	"net/url"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the process-wide configuration, read from the environment exactly
// once at startup.
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
}

type AppConfig struct {
	Env string `env:"APP_ENV" env-default:"development"`
}

type HTTPConfig struct {
	Port string `env:"PORT" env-default:"3000"`
}

type DBConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	Name     string `env:"DB_NAME" env-required:"true"`
	User     string `env:"DB_USER" env-required:"true"`
	Password string `env:"DB_PASS" env-required:"true"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" env-default:""`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type JWTConfig struct {
	// Secret signs every issued token; a missing value is a startup error.
	Secret string `env:"JWT_SECRET" env-required:"true"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// URL assembles the postgres connection string used by pgx and migrate.
func (c DBConfig) URL() string {
	return fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=disable",
		url.UserPassword(c.User, c.Password).String(), c.Host, c.Port, c.Name)
}

// IsProduction reports whether error responses must omit stack traces.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
