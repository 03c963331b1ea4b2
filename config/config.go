package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "config/config.yaml"

type Config struct {
	App         AppConfig         `yaml:"app"`
	Server      ServerConfig      `yaml:"server"`
	OpenWeather OpenWeatherConfig `yaml:"openweather"`
	Location    LocationConfig    `yaml:"location"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Log         LogConfig         `yaml:"log"`
	Sentry      SentryConfig      `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"APP_NAME"`
	Version string `yaml:"version" envconfig:"APP_VERSION"`
	Env     string `yaml:"env" envconfig:"APP_ENV"`
}

type ServerConfig struct {
	Port        string `yaml:"port" envconfig:"SERVER_PORT"`
	ReadTimeout int    `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	IdleTimeout int    `yaml:"idle_timeout" envconfig:"SERVER_IDLE_TIMEOUT"`
}

type OpenWeatherConfig struct {
	BaseURL string `yaml:"base_url" envconfig:"OPENWEATHER_BASE_URL"`
	APIKey  string `yaml:"api_key" envconfig:"OPENWEATHER_API_KEY"`
	// Timeout is the HTTP client timeout in seconds; 0 keeps the transport default.
	Timeout int `yaml:"timeout" envconfig:"OPENWEATHER_TIMEOUT"`
}

// LocationConfig describes the device fix used for location-based weather.
// With Enabled false the location is reported as unavailable.
type LocationConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"LOCATION_ENABLED"`
	Lat     float64 `yaml:"lat" envconfig:"LOCATION_LAT"`
	Lon     float64 `yaml:"lon" envconfig:"LOCATION_LON"`
}

type RateLimitConfig struct {
	// RPS of 0 disables rate limiting.
	RPS   float64 `yaml:"rps" envconfig:"RATE_LIMIT_RPS"`
	Burst int     `yaml:"burst" envconfig:"RATE_LIMIT_BURST"`
}

type LogConfig struct {
	Level string `yaml:"level" envconfig:"LOG_LEVEL"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" envconfig:"SENTRY_DSN"`
	Debug bool   `yaml:"debug" envconfig:"SENTRY_DEBUG"`
}

func Defaults() Config {
	return Config{
		App: AppConfig{
			Name:    "weather-view",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:        "8080",
			ReadTimeout: 10,
			IdleTimeout: 120,
		},
		OpenWeather: OpenWeatherConfig{
			BaseURL: "https://api.openweathermap.org/data/2.5",
		},
		RateLimit: RateLimitConfig{
			RPS:   1,
			Burst: 5,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads a YAML file, then an optional .env file, then the
// process environment. Later sources win.
type FileConfigProvider struct {
	path    string
	envFile string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path, envFile: ".env"}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Defaults()

	if err := p.loadFromFile(&cnf); err != nil {
		return nil, err
	}

	if err := godotenv.Load(p.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", p.envFile, err)
	}

	// Override with environment variables; unset variables keep earlier values.
	sections := []any{&cnf.App, &cnf.Server, &cnf.OpenWeather, &cnf.Location, &cnf.RateLimit, &cnf.Log, &cnf.Sentry}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("error environment variable parsing: %w", err)
		}
	}

	return &cnf, nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	var problems []string

	if strings.TrimSpace(config.App.Name) == "" {
		problems = append(problems, "app.name is required")
	}
	if strings.TrimSpace(config.Server.Port) == "" {
		problems = append(problems, "server.port is required")
	}
	if config.Server.ReadTimeout <= 0 || config.Server.IdleTimeout <= 0 {
		problems = append(problems, "server timeouts must be positive")
	}
	if strings.TrimSpace(config.OpenWeather.BaseURL) == "" {
		problems = append(problems, "openweather.base_url is required")
	}
	if strings.TrimSpace(config.OpenWeather.APIKey) == "" {
		problems = append(problems, "openweather.api_key is required")
	}
	if config.OpenWeather.Timeout < 0 {
		problems = append(problems, "openweather.timeout must not be negative")
	}
	if config.Location.Enabled {
		if config.Location.Lat < -90 || config.Location.Lat > 90 {
			problems = append(problems, "location.lat must be between -90 and 90")
		}
		if config.Location.Lon < -180 || config.Location.Lon > 180 {
			problems = append(problems, "location.lon must be between -180 and 180")
		}
	}
	if config.RateLimit.RPS < 0 {
		problems = append(problems, "rate_limit.rps must not be negative")
	}
	if config.RateLimit.RPS > 0 && config.RateLimit.Burst <= 0 {
		problems = append(problems, "rate_limit.burst must be positive when rate limiting is enabled")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}
	if err := provider.Validate(cnf); err != nil {
		return nil, err
	}
	return cnf, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// SentryZone maps the app environment onto the zones the Sentry hook reports for.
func (c *Config) SentryZone() string {
	switch c.App.Env {
	case "production":
		return "prod"
	case "development":
		return "dev"
	}
	return c.App.Env
}
