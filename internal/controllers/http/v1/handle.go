package http

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"weather-view/internal/location"
	"weather-view/internal/presentation"
	"weather-view/internal/repositories"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"city not found"`
}

// GetWeather godoc
// @Summary Get the weather screen
// @Description Returns the display model: city search result when present, otherwise the location weather, plus forecast rows
// @Tags Weather
// @Produce json
// @Success 200 {object} viewstate.Screen "Successful response"
// @Router /weather [get]
func (r *routes) handleWeather(c *fiber.Ctx) error {
	return c.JSON(r.state.Screen(r.loc))
}

// GetForecast godoc
// @Summary Get forecast rows
// @Description Returns the daily forecast rows for the device location
// @Tags Weather
// @Produce json
// @Success 200 {array} presentation.ForecastDay "Successful response"
// @Router /forecast [get]
func (r *routes) handleForecast(c *fiber.Ctx) error {
	days := presentation.NewForecastDays(r.state.Forecast.Get(), r.loc)
	if days == nil {
		days = []presentation.ForecastDay{}
	}
	return c.JSON(days)
}

// SearchCity godoc
// @Summary Search weather by city
// @Description Looks up current weather by city name; on success the city result replaces the displayed weather
// @Tags Weather
// @Produce json
// @Param city query string true "City name" example(Lisbon)
// @Success 200 {object} viewstate.Screen "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - missing city"
// @Failure 404 {object} ErrorResponse "City not found"
// @Failure 502 {object} ErrorResponse "Weather provider failed"
// @Router /search [post]
// @Example {curl} Example usage:
//
//	curl -X POST "http://localhost:8080/search?city=Lisbon"
func (r *routes) handleSearch(c *fiber.Ctx) error {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: city",
		})
	}

	if err := r.state.SearchByCity(c.Context(), city); err != nil {
		if repositories.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "city not found"})
		}

		r.l.Error(err, map[string]any{"city": city})
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "Failed to fetch weather data",
		})
	}

	return c.JSON(r.state.Screen(r.loc))
}

// Refresh godoc
// @Summary Refresh location weather
// @Description Fetches location weather and forecast again
// @Tags Weather
// @Produce json
// @Success 200 {object} viewstate.Screen "Successful response"
// @Failure 502 {object} ErrorResponse "Weather provider failed"
// @Failure 503 {object} ErrorResponse "Current location unavailable"
// @Router /refresh [post]
func (r *routes) handleRefresh(c *fiber.Ctx) error {
	if err := r.state.Load(c.Context()); err != nil {
		if errors.Is(err, location.ErrLocationUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
				Error: "Current location unavailable",
			})
		}

		r.l.Error(err, map[string]any{"op": "refresh"})
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "Failed to fetch weather data",
		})
	}

	return c.JSON(r.state.Screen(r.loc))
}

// Events godoc
// @Summary Stream screen updates
// @Description Server-sent events; one "screen" event with the full display model on subscription and on every change
// @Tags Weather
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /events [get]
func (r *routes) handleEvents(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	l := r.l.With(map[string]any{"request_id": c.GetRespHeader(fiber.HeaderXRequestID)})

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithCancel(r.ctx)
		defer cancel()

		l.Debug("event stream opened")

		changes := r.state.Watch(ctx)
		keepAlive := time.NewTicker(r.keepAlive)
		defer keepAlive.Stop()

		for {
			var frame []byte
			select {
			case _, ok := <-changes:
				if !ok {
					return
				}
				body, err := json.Marshal(r.state.Screen(r.loc))
				if err != nil {
					l.Error(err)
					return
				}
				frame = fmt.Appendf(nil, "event: screen\ndata: %s\n\n", body)
			case <-keepAlive.C:
				frame = []byte(": keepalive\n\n")
			}

			// a failed write or flush means the client went away
			if _, err := w.Write(frame); err != nil {
				l.Debug("event stream closed")
				return
			}
			if err := w.Flush(); err != nil {
				l.Debug("event stream closed")
				return
			}
		}
	})

	return nil
}
