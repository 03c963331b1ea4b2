// Package viewstate holds the latest weather results for the rendering layer
// as observable slots and carries the city search command.
package viewstate

import (
	"context"
	"errors"
	"sync"
	"time"

	"weather-view/internal/models"
	"weather-view/internal/presentation"
	"weather-view/internal/services/weather"
	"weather-view/pkg/logger"
)

// White is the screen colour before any location weather arrives.
const White presentation.Color = 0xFFFFFFFF

// Repository is the stream source the view state consumes.
type Repository interface {
	CurrentWeatherStream(ctx context.Context) weather.Stream[models.CurrentWeather]
	ForecastStream(ctx context.Context) weather.Stream[[]models.DailyForecast]
	CurrentWeatherByCityStream(ctx context.Context, city string) weather.Stream[models.CurrentWeather]
}

type ViewState struct {
	LocationWeather *Slot[*models.CurrentWeather]
	CityWeather     *Slot[*models.CurrentWeather]
	Forecast        *Slot[[]models.DailyForecast]

	repo Repository
	l    *logger.Logger
}

func New(repo Repository, l *logger.Logger) *ViewState {
	return &ViewState{
		LocationWeather: NewSlot[*models.CurrentWeather](nil),
		CityWeather:     NewSlot[*models.CurrentWeather](nil),
		Forecast:        NewSlot[[]models.DailyForecast](nil),
		repo:            repo,
		l:               l,
	}
}

// Load fetches location weather and forecast concurrently and stores each
// result that succeeds. Failures leave their slot untouched.
func (v *ViewState) Load(ctx context.Context) error {
	var (
		wg          sync.WaitGroup
		currentErr  error
		forecastErr error
	)

	current := v.repo.CurrentWeatherStream(ctx)
	forecast := v.repo.ForecastStream(ctx)

	wg.Add(2)
	go func() {
		defer wg.Done()
		w, err := weather.Await(ctx, current)
		if err != nil {
			currentErr = err
			v.l.Warning("location weather not available", map[string]any{"err": err.Error()})
			return
		}
		v.LocationWeather.Set(&w)
	}()
	go func() {
		defer wg.Done()
		days, err := weather.Await(ctx, forecast)
		if err != nil {
			forecastErr = err
			v.l.Warning("forecast not available", map[string]any{"err": err.Error()})
			return
		}
		v.Forecast.Set(days)
	}()
	wg.Wait()

	return errors.Join(currentErr, forecastErr)
}

// SearchByCity runs one city lookup. On success the city slot is
// overwritten; on failure the error is returned and the slot keeps its
// previous value, so an earlier result stays on screen.
func (v *ViewState) SearchByCity(ctx context.Context, name string) error {
	w, err := weather.Await(ctx, v.repo.CurrentWeatherByCityStream(ctx, name))
	if err != nil {
		v.l.Warning("city search failed", map[string]any{"city": name, "err": err.Error()})
		return err
	}

	v.CityWeather.Set(&w)
	v.l.Info("city search succeeded", map[string]any{"city": name, "name": w.Name})
	return nil
}

// Display returns the weather to render: the city result when present,
// otherwise the location result.
func (v *ViewState) Display() (*models.CurrentWeather, bool) {
	if w := v.CityWeather.Get(); w != nil {
		return w, true
	}
	if w := v.LocationWeather.Get(); w != nil {
		return w, true
	}
	return nil, false
}

// Screen is the full display model.
type Screen struct {
	// Background follows the location weather only, as a city search does
	// not recolour the screen.
	Background presentation.Color `json:"background" swaggertype:"string" example:"#FF54717A"`
	// StatusBar follows the displayed weather.
	StatusBar presentation.Color         `json:"status_bar" swaggertype:"string" example:"#FF54717A"`
	Summary   *presentation.Summary      `json:"summary"`
	Forecast  []presentation.ForecastDay `json:"forecast"`
}

// Screen builds the display model; weekdays are rendered in loc.
func (v *ViewState) Screen(loc *time.Location) Screen {
	screen := Screen{
		Background: White,
		StatusBar:  White,
		Forecast:   presentation.NewForecastDays(v.Forecast.Get(), loc),
	}

	if w := v.LocationWeather.Get(); w != nil {
		if cond, ok := w.PrimaryCondition(); ok {
			screen.Background = presentation.ThemeColor(presentation.Classify(cond.Main))
		}
	}

	w, ok := v.Display()
	if !ok {
		return screen
	}

	summary, err := presentation.NewSummary(*w)
	if err != nil {
		v.l.Warning("weather cannot be displayed", map[string]any{"name": w.Name, "err": err.Error()})
		return screen
	}
	screen.Summary = &summary
	screen.StatusBar = summary.ThemeColor

	return screen
}

// Watch signals once right away and then on every change of any slot until
// ctx ends. Bursts of changes may be coalesced into one signal.
func (v *ViewState) Watch(ctx context.Context) <-chan struct{} {
	out := make(chan struct{}, 1)

	location, cancelLocation := v.LocationWeather.Subscribe()
	city, cancelCity := v.CityWeather.Subscribe()
	forecast, cancelForecast := v.Forecast.Subscribe()

	notify := func() {
		select {
		case out <- struct{}{}:
		default:
		}
	}

	go func() {
		defer close(out)
		defer cancelForecast()
		defer cancelCity()
		defer cancelLocation()

		for {
			select {
			case <-ctx.Done():
				return
			case <-location:
				notify()
			case <-city:
				notify()
			case <-forecast:
				notify()
			}
		}
	}()

	return out
}
