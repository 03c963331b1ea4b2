package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"weather-view/internal/models"
	"weather-view/pkg/logger"
)

const (
	OpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

	// sub-daily data is never requested
	forecastExclude = "current,minutely,hourly,alerts"
	units           = "metric"

	opCurrentByCoordinates = "current weather by coordinates"
	opCurrentByCity        = "current weather by city"
	opForecast             = "forecast"
)

type OpenWeatherClient struct {
	BaseURL    string
	APIKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenWeatherClient(apiKey string, l *logger.Logger, httpClient HTTPClient) (*OpenWeatherClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &OpenWeatherClient{
		BaseURL:    OpenWeatherBaseURL,
		APIKey:     apiKey,
		httpClient: httpClient,
		l:          l.With(map[string]any{"client": "openweathermap"}),
	}, nil
}

func (c *OpenWeatherClient) Name() string {
	return "openweathermap"
}

type errorResponse struct {
	Message string `json:"message"`
}

func (c *OpenWeatherClient) FetchCurrentByCoordinates(ctx context.Context, lat, lon float64) (models.CurrentWeather, error) {
	var weather models.CurrentWeather

	params := coordinateParams(lat, lon)
	params.Set("units", units)

	err := c.get(ctx, opCurrentByCoordinates, "weather", params, &weather)
	return weather, err
}

func (c *OpenWeatherClient) FetchCurrentByCity(ctx context.Context, city string) (models.CurrentWeather, error) {
	var weather models.CurrentWeather

	params := url.Values{}
	params.Set("q", city)
	params.Set("units", units)

	err := c.get(ctx, opCurrentByCity, "weather", params, &weather)
	return weather, err
}

func (c *OpenWeatherClient) FetchForecast(ctx context.Context, lat, lon float64) (models.FullWeather, error) {
	var forecast models.FullWeather

	params := coordinateParams(lat, lon)
	params.Set("units", units)
	params.Set("exclude", forecastExclude)

	if err := c.get(ctx, opForecast, "onecall", params, &forecast); err != nil {
		return forecast, err
	}

	c.l.Info("parsed forecast response", map[string]any{
		"days": len(forecast.Daily),
	})

	return forecast, nil
}

func coordinateParams(lat, lon float64) url.Values {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return params
}

// get performs one GET against endpoint and decodes the body into out.
func (c *OpenWeatherClient) get(ctx context.Context, op, endpoint string, params url.Values, out any) error {
	// the credential is kept out of the logged query
	logged := params.Encode()
	params.Set("appid", c.APIKey)

	requestURL := strings.TrimRight(c.BaseURL, "/") + "/" + endpoint + "?" + params.Encode()

	c.l.Info("making openweathermap API request", map[string]any{
		"op":     op,
		"params": logged,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.l.Info("received openweathermap API response", map[string]any{
		"op":         op,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		httpErr := &HTTPError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
		var errResp errorResponse
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil {
			httpErr.Message = errResp.Message
		}
		return httpErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Op: op, Err: err}
	}

	return nil
}
