// Package location supplies the device coordinate fix used for
// location-based weather.
package location

import (
	"context"
	"errors"
	"fmt"

	"weather-view/config"
	"weather-view/internal/models"
)

// ErrLocationUnavailable is returned when no coordinates can be supplied,
// whether the fix failed or access was denied.
var ErrLocationUnavailable = errors.New("location unavailable")

// Provider returns a single best-known coordinate fix.
type Provider interface {
	Current(ctx context.Context) (models.Coordinates, error)
}

// StaticProvider always answers with the same fix.
type StaticProvider struct {
	coords models.Coordinates
}

func NewStaticProvider(lat, lon float64) *StaticProvider {
	return &StaticProvider{coords: models.Coordinates{Lat: lat, Lon: lon}}
}

func (p *StaticProvider) Current(ctx context.Context) (models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: %w", ErrLocationUnavailable, err)
	}
	return p.coords, nil
}

// DeniedProvider models a device where location access was refused.
type DeniedProvider struct{}

func (DeniedProvider) Current(context.Context) (models.Coordinates, error) {
	return models.Coordinates{}, fmt.Errorf("%w: access denied", ErrLocationUnavailable)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) (models.Coordinates, error)

func (f ProviderFunc) Current(ctx context.Context) (models.Coordinates, error) {
	return f(ctx)
}

// FromConfig returns a StaticProvider for an enabled location and a
// DeniedProvider otherwise.
func FromConfig(cfg config.LocationConfig) Provider {
	if !cfg.Enabled {
		return DeniedProvider{}
	}
	return NewStaticProvider(cfg.Lat, cfg.Lon)
}
