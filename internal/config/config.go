package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config is the application configuration, loaded from environment
// variables (and a .env file during development).
type Config struct {
	// Port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"3000"`

	// GinMode is passed to gin.SetMode (debug, release, test).
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	// StoreDriver selects the document store backend.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`

	DB    DBConfig    `envPrefix:"DB_"`
	Redis RedisConfig `envPrefix:"REDIS_"`

	// CountCacheTTL bounds how stale the paged job total may be.
	CountCacheTTL time.Duration `env:"COUNT_CACHE_TTL" envDefault:"5s"`

	CORS CORSConfig

	// EmptyListNotFound makes list-by-key endpoints answer 404 on an empty
	// result. When false they answer 200 with an empty array.
	EmptyListNotFound bool `env:"EMPTY_LIST_NOT_FOUND" envDefault:"true"`

	Log LogConfig `envPrefix:"LOG_"`
}

// DBConfig contains PostgreSQL connection settings.
type DBConfig struct {
	// DSN overrides the individual fields when set.
	DSN         string `env:"DSN"`
	Host        string `env:"HOST"         envDefault:"localhost"`
	Port        int    `env:"PORT"         envDefault:"5432"`
	User        string `env:"USER"         envDefault:"postgres"`
	Password    string `env:"PASSWORD"     envDefault:"password"`
	Name        string `env:"NAME"         envDefault:"JobPortal"`
	SSLMode     string `env:"SSL_MODE"     envDefault:"disable"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`
}

// ConnString returns the DSN handed to the postgres driver.
func (d DBConfig) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// RedisConfig configures the optional count cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:5173,https://solojobportal.web.app"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `env:"LEVEL"  envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
}

// Load reads .env (if present) and parses the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}
	return parse(env.Options{})
}

// LoadFromMap parses configuration from the given variables only.
func LoadFromMap(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Sanitize normalises values loaded from the environment.
func (c *Config) Sanitize() {
	c.Port = strings.TrimSpace(c.Port)
	if c.Port == "" {
		c.Port = "3000"
	}
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	if c.StoreDriver == "" {
		c.StoreDriver = DriverPostgres
	}
	if c.CountCacheTTL < 0 {
		c.CountCacheTTL = 0
	}

	origins := c.CORS.AllowedOrigins[:0]
	for _, o := range c.CORS.AllowedOrigins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			origins = append(origins, o)
		}
	}
	c.CORS.AllowedOrigins = origins

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		return errors.New("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	for _, o := range c.CORS.AllowedOrigins {
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("invalid CORS origin %q: must start with http:// or https://", o)
		}
	}
	return nil
}

// Addr returns the listen address for net/http.
func (c *Config) Addr() string {
	return ":" + c.Port
}
