package models

import "time"

type DayTemperature struct {
	Day float64 `json:"day" example:"21.4"`
	Min float64 `json:"min" example:"12.9"`
	Max float64 `json:"max" example:"22.8"`
}

// DailyForecast is one entry of the onecall "daily" list.
type DailyForecast struct {
	Dt      int64          `json:"dt" example:"1753444800"`
	Temp    DayTemperature `json:"temp"`
	Weather []Condition    `json:"weather"`
}

func (d *DailyForecast) Time() time.Time {
	return time.Unix(d.Dt, 0)
}

func (d *DailyForecast) PrimaryCondition() (Condition, bool) {
	return primary(d.Weather)
}

// FullWeather is the body of the "onecall" endpoint with current, minutely,
// hourly and alerts excluded.
type FullWeather struct {
	Lat            float64         `json:"lat"`
	Lon            float64         `json:"lon"`
	Timezone       string          `json:"timezone"`
	TimezoneOffset int             `json:"timezone_offset"`
	Daily          []DailyForecast `json:"daily"`
}
