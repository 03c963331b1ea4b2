package repositories

import (
	"context"
	"net/http"
	"time"

	"weather-view/config"
	"weather-view/internal/models"
	"weather-view/pkg/logger"
)

// HTTPClient is the transport the clients send requests through.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherClient binds the three weather endpoints.
type WeatherClient interface {
	Name() string
	FetchCurrentByCoordinates(ctx context.Context, lat, lon float64) (models.CurrentWeather, error)
	FetchCurrentByCity(ctx context.Context, city string) (models.CurrentWeather, error)
	FetchForecast(ctx context.Context, lat, lon float64) (models.FullWeather, error)
}

// InitWeatherClient builds the OpenWeatherMap client from config, rate
// limited when cfg.RateLimit.RPS is positive.
func InitWeatherClient(cfg *config.Config, l *logger.Logger) (WeatherClient, error) {
	httpClient := &http.Client{}
	if cfg.OpenWeather.Timeout > 0 {
		httpClient.Timeout = time.Duration(cfg.OpenWeather.Timeout) * time.Second
	}

	client, err := NewOpenWeatherClient(cfg.OpenWeather.APIKey, l, httpClient)
	if err != nil {
		return nil, err
	}
	if cfg.OpenWeather.BaseURL != "" {
		client.BaseURL = cfg.OpenWeather.BaseURL
	}

	if cfg.RateLimit.RPS <= 0 {
		return client, nil
	}

	l.Info("applied rate limiting to weather client", map[string]any{
		"rps":   cfg.RateLimit.RPS,
		"burst": cfg.RateLimit.Burst,
	})

	return NewRateLimitedClient(client, cfg.RateLimit.RPS, cfg.RateLimit.Burst), nil
}
