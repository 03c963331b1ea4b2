package models

// Condition is a provider condition descriptor. Main is the short category
// such as "Clouds", "Rain" or "Clear".
type Condition struct {
	ID          int    `json:"id" example:"803"`
	Main        string `json:"main" example:"Clouds"`
	Description string `json:"description" example:"broken clouds"`
	Icon        string `json:"icon" example:"04d"`
}

type Temperature struct {
	Temp    float64 `json:"temp" example:"17.3"`
	TempMin float64 `json:"temp_min" example:"15.1"`
	TempMax float64 `json:"temp_max" example:"19.02"`
}

// CurrentWeather is the body of the "weather" endpoint.
type CurrentWeather struct {
	Name    string      `json:"name" example:"London"`
	Main    Temperature `json:"main"`
	Weather []Condition `json:"weather"`
}

// PrimaryCondition returns the first condition, the only one used for display.
func (w *CurrentWeather) PrimaryCondition() (Condition, bool) {
	return primary(w.Weather)
}

func primary(conditions []Condition) (Condition, bool) {
	if len(conditions) == 0 {
		return Condition{}, false
	}
	return conditions[0], true
}
