package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	Env      string `env:"APP_ENV" env-default:"local"`
	GinMode  string `env:"GIN_MODE" env-default:"debug"`
	HTTP     HTTPConfig
	Database DatabaseConfig
	Log      LogConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:""`
	Port            string        `env:"HTTP_PORT" env-default:"5000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// DatabaseConfig selects the storage engine. Path is only used by sqlite,
// the network settings only by mysql and postgres.
type DatabaseConfig struct {
	Driver   string `env:"DB_DRIVER" env-default:"sqlite"`
	Path     string `env:"DB_PATH" env-default:"tasks.sqlite3"`
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"3306"`
	User     string `env:"DB_USER" env-default:"taskuser"`
	Password string `env:"DB_PASSWORD" env-default:"taskpassword"`
	Name     string `env:"DB_NAME" env-default:"task_follow"`
	LogLevel string `env:"DB_LOG_LEVEL" env-default:"warn"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown env: %q", c.Env)
	}

	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required for the %s driver", DriverSQLite)
		}
	case DriverMySQL, DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for the %s driver", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unknown database driver: %q", c.Database.Driver)
	}

	return nil
}

// Address returns the listen address for the HTTP server.
func (c HTTPConfig) Address() string {
	return c.Host + ":" + c.Port
}

// String returns a representation of the config with the database password masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Env: %s, HTTP: %s, DB: %s@%s/%s (password masked)}",
		c.Env, c.HTTP.Address(), c.Database.User, c.Database.Driver, c.Database.Name)
}
