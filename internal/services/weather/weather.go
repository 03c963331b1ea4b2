package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"weather-view/internal/location"
	"weather-view/internal/models"
	"weather-view/internal/repositories"
	"weather-view/pkg/logger"
)

// ErrEmptyCity is emitted for a blank search; no request is made.
var ErrEmptyCity = errors.New("city name cannot be empty")

// DefaultForecastWindow is the number of daily entries a forecast keeps.
const DefaultForecastWindow = 5

// Result is the single terminal event of a Stream.
type Result[T any] struct {
	Value T
	Err   error
}

// Stream is a one-shot stream: it delivers exactly one Result and is closed.
// The channel is buffered so the producer never blocks on an absent reader.
type Stream[T any] <-chan Result[T]

// Await blocks until the stream emits or ctx ends. If ctx ends first the
// result is dropped.
func Await[T any](ctx context.Context, s Stream[T]) (T, error) {
	select {
	case r, ok := <-s:
		if !ok {
			var zero T
			return zero, errors.New("stream closed without a result")
		}
		return r.Value, r.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func oneShot[T any](fetch func() (T, error)) Stream[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		value, err := fetch()
		ch <- Result[T]{Value: value, Err: err}
	}()
	return ch
}

// Repository exposes the weather client as one-shot streams. Every call
// starts a fresh fetch; nothing is cached or retried.
type Repository struct {
	client   repositories.WeatherClient
	location location.Provider
	l        *logger.Logger
}

func NewRepository(client repositories.WeatherClient, loc location.Provider, l *logger.Logger) *Repository {
	return &Repository{
		client:   client,
		location: loc,
		l:        l,
	}
}

// CurrentWeatherStream fetches current weather for the device location.
func (r *Repository) CurrentWeatherStream(ctx context.Context) Stream[models.CurrentWeather] {
	return oneShot(func() (models.CurrentWeather, error) {
		coords, err := r.coordinates(ctx)
		if err != nil {
			return models.CurrentWeather{}, err
		}

		r.l.Debug("fetching current weather", map[string]any{"lat": coords.Lat, "lon": coords.Lon})

		weather, err := r.client.FetchCurrentByCoordinates(ctx, coords.Lat, coords.Lon)
		if err != nil {
			r.l.Warning("failed to fetch current weather", map[string]any{"client": r.client.Name(), "err": err.Error()})
			return models.CurrentWeather{}, err
		}
		return weather, nil
	})
}

// ForecastStream fetches the daily forecast for the device location, cut to
// the first DefaultForecastWindow days. Shorter lists pass through as sent.
func (r *Repository) ForecastStream(ctx context.Context) Stream[[]models.DailyForecast] {
	return oneShot(func() ([]models.DailyForecast, error) {
		coords, err := r.coordinates(ctx)
		if err != nil {
			return nil, err
		}

		r.l.Debug("fetching forecast", map[string]any{"lat": coords.Lat, "lon": coords.Lon})

		forecast, err := r.client.FetchForecast(ctx, coords.Lat, coords.Lon)
		if err != nil {
			r.l.Warning("failed to fetch forecast", map[string]any{"client": r.client.Name(), "err": err.Error()})
			return nil, err
		}

		days := forecast.Daily
		if len(days) > DefaultForecastWindow {
			days = days[:DefaultForecastWindow]
		}

		r.l.Info("successfully fetched forecast", map[string]any{
			"client":   r.client.Name(),
			"received": len(forecast.Daily),
			"days":     len(days),
		})

		return days, nil
	})
}

// CurrentWeatherByCityStream fetches current weather for a free-text city
// name. Meant to be called anew for every search.
func (r *Repository) CurrentWeatherByCityStream(ctx context.Context, city string) Stream[models.CurrentWeather] {
	return oneShot(func() (models.CurrentWeather, error) {
		city = strings.TrimSpace(city)
		if city == "" {
			return models.CurrentWeather{}, ErrEmptyCity
		}

		r.l.Debug("fetching current weather by city", map[string]any{"city": city})

		weather, err := r.client.FetchCurrentByCity(ctx, city)
		if err != nil {
			r.l.Warning("failed to fetch current weather by city", map[string]any{
				"client": r.client.Name(),
				"city":   city,
				"err":    err.Error(),
			})
			return models.CurrentWeather{}, err
		}
		return weather, nil
	})
}

func (r *Repository) coordinates(ctx context.Context) (models.Coordinates, error) {
	coords, err := r.location.Current(ctx)
	if err != nil {
		r.l.Warning("location unavailable", map[string]any{"err": err.Error()})
		if !errors.Is(err, location.ErrLocationUnavailable) {
			err = fmt.Errorf("%w: %w", location.ErrLocationUnavailable, err)
		}
		return models.Coordinates{}, err
	}
	return coords, nil
}
