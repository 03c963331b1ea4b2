package presentation

import (
	"errors"
	"fmt"
	"math"
	"time"

	"weather-view/internal/models"
)

var ErrNoConditions = errors.New("weather record has no conditions")

// Summary is the weather summary block of the screen.
type Summary struct {
	Name           string         `json:"name" example:"London"`
	Condition      string         `json:"condition" example:"Clouds"`
	Classification Classification `json:"classification" swaggertype:"string" example:"cloudy"`
	Temperature    string         `json:"temperature" example:"17°"`
	Min            string         `json:"min" example:"15°"`
	Max            string         `json:"max" example:"19°"`
	Background     AssetID        `json:"background" example:"forest_cloudy"`
	ThemeColor     Color          `json:"theme_color" swaggertype:"string" example:"#FF54717A"`
}

// ForecastDay is one row of the forecast list.
type ForecastDay struct {
	Weekday        string         `json:"weekday" example:"Friday"`
	Icon           AssetID        `json:"icon" example:"rain"`
	Temperature    string         `json:"temperature" example:"21°"`
	Condition      string         `json:"condition" example:"Rain"`
	Classification Classification `json:"classification" swaggertype:"string" example:"rainy"`
}

// FormatTemperature rounds to whole degrees; halves round up, so -2.5 is -2.
func FormatTemperature(t float64) string {
	return fmt.Sprintf("%d°", int(math.Floor(t+0.5)))
}

// Weekday returns the full weekday name of a unix timestamp in loc.
func Weekday(dt int64, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(dt, 0).In(loc).Weekday().String()
}

func NewSummary(w models.CurrentWeather) (Summary, error) {
	cond, ok := w.PrimaryCondition()
	if !ok {
		return Summary{}, ErrNoConditions
	}

	c := Classify(cond.Main)
	return Summary{
		Name:           w.Name,
		Condition:      cond.Main,
		Classification: c,
		Temperature:    FormatTemperature(w.Main.Temp),
		Min:            FormatTemperature(w.Main.TempMin),
		Max:            FormatTemperature(w.Main.TempMax),
		Background:     BackgroundAsset(c),
		ThemeColor:     ThemeColor(c),
	}, nil
}

// NewForecastDays maps forecast entries to rows, skipping entries without
// conditions.
func NewForecastDays(days []models.DailyForecast, loc *time.Location) []ForecastDay {
	out := make([]ForecastDay, 0, len(days))
	for _, d := range days {
		cond, ok := d.PrimaryCondition()
		if !ok {
			continue
		}
		c := Classify(cond.Main)
		out = append(out, ForecastDay{
			Weekday:        Weekday(d.Dt, loc),
			Icon:           ForecastIcon(c),
			Temperature:    FormatTemperature(d.Temp.Day),
			Condition:      cond.Main,
			Classification: c,
		})
	}
	return out
}
