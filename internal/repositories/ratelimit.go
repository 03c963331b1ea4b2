package repositories

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"weather-view/internal/models"
)

// RateLimitedClient wraps a WeatherClient with a shared limiter. Calls wait
// for a token; they are never retried.
type RateLimitedClient struct {
	client  WeatherClient
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedClient allows rps requests per second (fractional values
// allowed) with bursts of up to burst requests.
func NewRateLimitedClient(client WeatherClient, rps float64, burst int) *RateLimitedClient {
	return &RateLimitedClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", client.Name()),
	}
}

func (r *RateLimitedClient) Name() string {
	return r.name
}

func (r *RateLimitedClient) wait(ctx context.Context, op string) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("rate limit wait canceled: %w", err)}
	}
	return nil
}

func (r *RateLimitedClient) FetchCurrentByCoordinates(ctx context.Context, lat, lon float64) (models.CurrentWeather, error) {
	if err := r.wait(ctx, opCurrentByCoordinates); err != nil {
		return models.CurrentWeather{}, err
	}
	return r.client.FetchCurrentByCoordinates(ctx, lat, lon)
}

func (r *RateLimitedClient) FetchCurrentByCity(ctx context.Context, city string) (models.CurrentWeather, error) {
	if err := r.wait(ctx, opCurrentByCity); err != nil {
		return models.CurrentWeather{}, err
	}
	return r.client.FetchCurrentByCity(ctx, city)
}

func (r *RateLimitedClient) FetchForecast(ctx context.Context, lat, lon float64) (models.FullWeather, error) {
	if err := r.wait(ctx, opForecast); err != nil {
		return models.FullWeather{}, err
	}
	return r.client.FetchForecast(ctx, lat, lon)
}

var (
	_ WeatherClient = (*OpenWeatherClient)(nil)
	_ WeatherClient = (*RateLimitedClient)(nil)
)
