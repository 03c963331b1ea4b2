package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-view/config"
	v1 "weather-view/internal/controllers/http/v1"
	"weather-view/internal/location"
	"weather-view/internal/repositories"
	"weather-view/internal/services/weather"
	"weather-view/internal/viewstate"
	"weather-view/pkg/httpserver"
	"weather-view/pkg/logger"
	"weather-view/pkg/observe"
)

// @title Weather View API
// @version 1.0.0
// @description Current weather for the device location or a searched city, with a daily forecast.
// @description Weather records are mapped to display values: classification, background, theme colour and icons.

// @contact.name Weather View Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Weather view operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		hook = observe.NewSentryHook(cnf.SentryZone(), cnf.App.Name, 0, cnf.Sentry.Debug, cnf.Sentry.DSN)
		writers = append(writers, hook)
	}

	l := logger.NewZapLogger(cnf.App.Name, writers...)
	l.SetEnv(cnf.SentryZone())
	if err := l.SetLevel(cnf.Log.Level); err != nil {
		l.Warning("invalid log level, keeping default", map[string]any{"level": cnf.Log.Level})
	}
	if hook != nil {
		hook.SetLogger(l)
	}

	client, err := repositories.InitWeatherClient(cnf, l)
	if err != nil {
		l.Fatal("cannot init weather client", map[string]any{"err": err.Error()})
	}

	repo := weather.NewRepository(client, location.FromConfig(cnf.Location), l)
	state := viewstate.New(repo, l)

	app := httpserver.InitFiberServer(cnf.App.Name, cnf.Server, l)

	v1.NewRouter(
		ctx,
		app,
		state,
		l,
		time.Local,
	)

	go func() {
		loadCtx, loadCancel := context.WithTimeout(ctx, 30*time.Second)
		defer loadCancel()

		if err := state.Load(loadCtx); err != nil {
			l.Warning("initial weather load incomplete", map[string]any{"err": err.Error()})
		}
	}()

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":    cnf.Server.Port,
		"client":  client.Name(),
		"version": cnf.App.Version,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		// ends open event streams before the server waits on them
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
