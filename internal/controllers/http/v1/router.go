package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "weather-view/docs"
	"weather-view/internal/viewstate"
	"weather-view/pkg/logger"
)

// eventKeepAlive is how often an idle event stream writes a comment frame,
// so a dead client is noticed without waiting for a weather change.
const eventKeepAlive = 15 * time.Second

type routes struct {
	// ctx bounds long-lived streams; cancelled on shutdown.
	ctx   context.Context
	state *viewstate.ViewState
	l     *logger.Logger
	loc   *time.Location

	keepAlive time.Duration
}

func NewRouter(
	ctx context.Context,
	app *fiber.App,
	state *viewstate.ViewState,
	l *logger.Logger,
	loc *time.Location,
) {
	r := &routes{
		ctx:       ctx,
		state:     state,
		l:         l,
		loc:       loc,
		keepAlive: eventKeepAlive,
	}

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	app.Get("/weather", r.handleWeather)
	app.Get("/forecast", r.handleForecast)
	app.Post("/search", r.handleSearch)
	app.Post("/refresh", r.handleRefresh)
	app.Get("/events", r.handleEvents)
}
