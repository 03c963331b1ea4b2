package viewstate

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-view/internal/location"
	"weather-view/internal/models"
	"weather-view/internal/presentation"
	"weather-view/internal/repositories"
	"weather-view/internal/services/weather"
	"weather-view/pkg/logger"
)

// stubClient answers from fixed data and counts requests.
type stubClient struct {
	mu       sync.Mutex
	requests int
	current  models.CurrentWeather
	forecast models.FullWeather
	cities   map[string]models.CurrentWeather
	fail     error
}

func (s *stubClient) Name() string { return "stub" }

func (s *stubClient) count() {
	s.mu.Lock()
	s.requests++
	s.mu.Unlock()
}

func (s *stubClient) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

func (s *stubClient) FetchCurrentByCoordinates(ctx context.Context, lat, lon float64) (models.CurrentWeather, error) {
	s.count()
	if s.fail != nil {
		return models.CurrentWeather{}, s.fail
	}
	return s.current, nil
}

func (s *stubClient) FetchCurrentByCity(ctx context.Context, city string) (models.CurrentWeather, error) {
	s.count()
	w, ok := s.cities[city]
	if !ok {
		return models.CurrentWeather{}, &repositories.HTTPError{Op: "current weather by city", StatusCode: http.StatusNotFound, Message: "city not found"}
	}
	return w, nil
}

func (s *stubClient) FetchForecast(ctx context.Context, lat, lon float64) (models.FullWeather, error) {
	s.count()
	if s.fail != nil {
		return models.FullWeather{}, s.fail
	}
	return s.forecast, nil
}

var (
	london = models.CurrentWeather{
		Name:    "London",
		Main:    models.Temperature{Temp: 17.31, TempMin: 15.07, TempMax: 19.02},
		Weather: []models.Condition{{Main: "Clouds"}},
	}
	paris = models.CurrentWeather{
		Name:    "Paris",
		Main:    models.Temperature{Temp: 22.5, TempMin: 20, TempMax: 24},
		Weather: []models.Condition{{Main: "Clear"}},
	}
	forecast = models.FullWeather{Daily: []models.DailyForecast{
		{Dt: 1753444800, Temp: models.DayTemperature{Day: 21.4}, Weather: []models.Condition{{Main: "Rain"}}},
		{Dt: 1753531200, Temp: models.DayTemperature{Day: 19.0}, Weather: []models.Condition{{Main: "Clouds"}}},
	}}
)

func newViewState(client *stubClient, loc location.Provider) *ViewState {
	l := logger.NewZapLogger("test-app", io.Discard)
	return New(weather.NewRepository(client, loc, l), l)
}

func TestSlot_SubscribeGetsCurrentAndLatest(t *testing.T) {
	s := NewSlot(1)
	ch, cancel := s.Subscribe()
	defer cancel()

	assert.Equal(t, 1, <-ch)

	s.Set(2)
	s.Set(3)
	assert.Equal(t, 3, <-ch, "slow subscribers only see the latest value")
	assert.Equal(t, 3, s.Get())
}

func TestSlot_CancelClosesChannel(t *testing.T) {
	s := NewSlot("a")
	ch, cancel := s.Subscribe()
	<-ch

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// setting after cancel must not panic on the closed channel
	s.Set("b")
	assert.Equal(t, "b", s.Get())
}

func TestViewState_Load(t *testing.T) {
	client := &stubClient{current: london, forecast: forecast}
	vs := newViewState(client, location.NewStaticProvider(51.5, -0.12))

	require.NoError(t, vs.Load(context.Background()))

	assert.Equal(t, &london, vs.LocationWeather.Get())
	assert.Equal(t, forecast.Daily, vs.Forecast.Get())
	assert.Nil(t, vs.CityWeather.Get())
	assert.Equal(t, 2, client.Requests())
}

func TestViewState_LoadWithoutLocation(t *testing.T) {
	client := &stubClient{current: london, forecast: forecast}
	vs := newViewState(client, location.DeniedProvider{})

	err := vs.Load(context.Background())
	assert.ErrorIs(t, err, location.ErrLocationUnavailable)
	assert.Nil(t, vs.LocationWeather.Get())
	assert.Nil(t, vs.Forecast.Get())
	assert.Zero(t, client.Requests())
}

func TestViewState_LoadFailureKeepsPreviousValues(t *testing.T) {
	client := &stubClient{current: london, forecast: forecast}
	vs := newViewState(client, location.NewStaticProvider(51.5, -0.12))
	require.NoError(t, vs.Load(context.Background()))

	client.fail = errors.New("offline")
	assert.Error(t, vs.Load(context.Background()))

	assert.Equal(t, &london, vs.LocationWeather.Get())
	assert.Equal(t, forecast.Daily, vs.Forecast.Get())
}

func TestViewState_SearchByCity(t *testing.T) {
	client := &stubClient{cities: map[string]models.CurrentWeather{"Paris": paris}}
	vs := newViewState(client, location.DeniedProvider{})

	require.NoError(t, vs.SearchByCity(context.Background(), "Paris"))
	assert.Equal(t, &paris, vs.CityWeather.Get())
}

func TestViewState_SearchUnknownCityKeepsSlot(t *testing.T) {
	client := &stubClient{cities: map[string]models.CurrentWeather{"Paris": paris}}
	vs := newViewState(client, location.DeniedProvider{})
	require.NoError(t, vs.SearchByCity(context.Background(), "Paris"))

	err := vs.SearchByCity(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.True(t, repositories.IsNotFound(err))
	assert.ErrorIs(t, err, repositories.ErrCityNotFound)

	assert.Equal(t, &paris, vs.CityWeather.Get(), "a failed search leaves the previous result in place")
}

func TestViewState_SearchUnknownCityFromEmpty(t *testing.T) {
	vs := newViewState(&stubClient{}, location.DeniedProvider{})

	assert.Error(t, vs.SearchByCity(context.Background(), "Atlantis"))
	assert.Nil(t, vs.CityWeather.Get())
}

func TestViewState_Display(t *testing.T) {
	vs := newViewState(&stubClient{}, location.DeniedProvider{})

	_, ok := vs.Display()
	assert.False(t, ok)

	vs.LocationWeather.Set(&london)
	w, ok := vs.Display()
	require.True(t, ok)
	assert.Equal(t, "London", w.Name)

	vs.CityWeather.Set(&paris)
	w, ok = vs.Display()
	require.True(t, ok)
	assert.Equal(t, "Paris", w.Name)

	vs.LocationWeather.Set(nil)
	w, ok = vs.Display()
	require.True(t, ok)
	assert.Equal(t, "Paris", w.Name)
}

func TestViewState_Screen(t *testing.T) {
	vs := newViewState(&stubClient{}, location.DeniedProvider{})

	empty := vs.Screen(time.UTC)
	assert.Nil(t, empty.Summary)
	assert.Equal(t, White, empty.Background)
	assert.Empty(t, empty.Forecast)

	vs.LocationWeather.Set(&london)
	vs.Forecast.Set(forecast.Daily)
	vs.CityWeather.Set(&paris)

	screen := vs.Screen(time.UTC)
	require.NotNil(t, screen.Summary)
	assert.Equal(t, "Paris", screen.Summary.Name)
	assert.Equal(t, "23°", screen.Summary.Temperature)
	assert.Equal(t, presentation.BackgroundSunny, screen.Summary.Background)
	assert.Equal(t, presentation.SunnyGreen, screen.StatusBar)
	assert.Equal(t, presentation.CloudyBlue, screen.Background)

	require.Len(t, screen.Forecast, 2)
	assert.Equal(t, "Friday", screen.Forecast[0].Weekday)
	assert.Equal(t, presentation.IconRain, screen.Forecast[0].Icon)
	assert.Equal(t, presentation.IconPartlySunny, screen.Forecast[1].Icon)
}

func TestViewState_ScreenSkipsInvalidWeather(t *testing.T) {
	vs := newViewState(&stubClient{}, location.DeniedProvider{})
	vs.LocationWeather.Set(&models.CurrentWeather{Name: "Nowhere"})

	screen := vs.Screen(time.UTC)
	assert.Nil(t, screen.Summary)
	assert.Equal(t, White, screen.Background)
}

func TestViewState_Watch(t *testing.T) {
	vs := newViewState(&stubClient{}, location.DeniedProvider{})

	ctx, cancel := context.WithCancel(context.Background())
	changes := vs.Watch(ctx)

	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("expected an initial signal")
	}

	vs.CityWeather.Set(&paris)

	assert.Eventually(t, func() bool {
		select {
		case <-changes:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, open := <-changes:
			return !open
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
