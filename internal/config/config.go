package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Env        string `yaml:"env" env:"APP_ENV"`
	LogLevel   string `yaml:"log_level" env:"LOG_LEVEL"`
	BaseURL    string `yaml:"base_url" env:"BASE_URL"`
	Timezone   string `yaml:"timezone" env:"TIMEZONE"`
	Storage    string `yaml:"storage" env:"STORAGE"`
	HTTPServer `yaml:"http_server"`
	Backend    `yaml:"backend"`
	Auth       `yaml:"auth"`
	Postgres   `yaml:"postgres"`
	Redis      `yaml:"redis"`
}

// Level returns the configured log level, info when it is not recognized.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Location returns the time zone the dashboard renders dates in.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

type HTTPServer struct {
	Port           int           `yaml:"port" env:"HTTP_PORT"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	MaxHeaderBytes int           `yaml:"max_header_bytes"`
	CertFile       string        `yaml:"cert_file" env:"HTTP_CERT_FILE"`
	KeyFile        string        `yaml:"key_file" env:"HTTP_KEY_FILE"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" envSeparator:","`
}

var defaultHTTPServer = HTTPServer{
	Port:           8080,
	ReadTimeout:    5 * time.Second,
	WriteTimeout:   15 * time.Second,
	IdleTimeout:    time.Minute,
	MaxHeaderBytes: 1 << 20,
	AllowedOrigins: []string{"https://*", "http://localhost:*"},
}

func (s *HTTPServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Backend is the shortening service the client talks to.
type Backend struct {
	URL      string        `yaml:"url" env:"BACKEND_URL"`
	APIToken string        `yaml:"api_token" env:"BACKEND_API_TOKEN"`
	Timeout  time.Duration `yaml:"timeout" env:"BACKEND_TIMEOUT"`
}

var defaultBackend = Backend{
	URL:     "http://localhost:8081",
	Timeout: 10 * time.Second,
}

type Auth struct {
	GoogleClientID     string        `yaml:"google_client_id" env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string        `yaml:"google_client_secret" env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string        `yaml:"google_redirect_url" env:"GOOGLE_REDIRECT_URL"`
	JWTSecret          string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	TokenTTL           time.Duration `yaml:"token_ttl" env:"TOKEN_TTL"`
	SecureCookies      bool          `yaml:"secure_cookies" env:"SECURE_COOKIES"`
}

var defaultAuth = Auth{
	GoogleRedirectURL: "http://localhost:8080/api/v1/auth/callback",
	TokenTTL:          24 * time.Hour,
}

type Postgres struct {
	User            string        `yaml:"user" env:"POSTGRES_USER"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD"`
	Host            string        `yaml:"host" env:"POSTGRES_HOST"`
	Port            int           `yaml:"port" env:"POSTGRES_PORT"`
	DB              string        `yaml:"db" env:"POSTGRES_DB"`
	SSLMode         string        `yaml:"sslmode" env:"POSTGRES_SSLMODE"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
}

var defaultPostgres = Postgres{
	Host:            "localhost",
	Port:            5432,
	SSLMode:         "disable",
	ConnMaxIdleTime: 5 * time.Minute,
	ConnMaxLifetime: 30 * time.Minute,
	MaxIdleConns:    5,
	MaxOpenConns:    25,
}

func (p *Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DB, p.SSLMode)
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

var defaultRedis = Redis{
	Addr: "localhost:6379",
}

// Load reads the YAML file at path over the defaults. Variables from a .env
// file in the working directory, if present, and then the process
// environment override the file.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open config file: %w", op, err)
	}
	defer f.Close()

	var cfg Config
	setDefaults(&cfg)

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to decode config file: %w", op, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: failed to load .env file: %w", op, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse environment variables: %w", op, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvStage, EnvProd:
	default:
		return fmt.Errorf("unknown env %q", c.Env)
	}

	if err := validateAbsoluteURL(c.BaseURL); err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}

	if err := validateAbsoluteURL(c.Backend.URL); err != nil {
		return fmt.Errorf("invalid backend url: %w", err)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}

	switch c.Storage {
	case StorageMemory, StorageRedis:
	case StoragePostgres:
		if c.Postgres.User == "" || c.Postgres.DB == "" {
			return errors.New("postgres user and db are required")
		}
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("jwt_secret is required")
	}

	return nil
}

func validateAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q is not an absolute url", raw)
	}
	return nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.LogLevel = "info"
	cfg.BaseURL = "http://localhost:8081"
	cfg.Timezone = "UTC"
	cfg.Storage = StorageMemory
	cfg.HTTPServer = defaultHTTPServer
	cfg.Backend = defaultBackend
	cfg.Auth = defaultAuth
	cfg.Postgres = defaultPostgres
	cfg.Redis = defaultRedis
}
