package presentation

import (
	"encoding/json"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-view/internal/models"
)

var allClassifications = []Classification{Clear, Cloudy, Rainy}

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		category string
		want     Classification
	}{
		{"light rain", Rainy},
		{"broken clouds", Cloudy},
		{"Clear", Clear},
		{"cloudy with rain", Cloudy},
		{"Clouds", Cloudy},
		{"Rain", Rainy},
		{"RAIN", Rainy},
		{"Drizzle", Clear},
		{"Snow", Clear},
		{"", Clear},
		{"rain then CLOUDS", Cloudy},
		{"Thunderstorm with heavy rain", Rainy},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.category))
		})
	}
}

// randomCase flips the case of each letter at random.
func randomCase(r *rand.Rand, s string) string {
	var b strings.Builder
	for _, ch := range s {
		if r.Intn(2) == 0 {
			b.WriteString(strings.ToUpper(string(ch)))
		} else {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func randomFiller(r *rand.Rand) string {
	// letters that can never spell "cloud" or "rain"
	const alphabet = "befghjkmpqstvwxyz -"
	n := r.Intn(8)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

func TestClassify_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		pre, mid, post := randomFiller(r), randomFiller(r), randomFiller(r)
		cloud := randomCase(r, "cloud")
		rain := randomCase(r, "rain")

		assert.Equal(t, Cloudy, Classify(pre+cloud+post), "cloud alone: %q", pre+cloud+post)
		assert.Equal(t, Cloudy, Classify(pre+cloud+mid+rain+post), "cloud then rain")
		assert.Equal(t, Cloudy, Classify(pre+rain+mid+cloud+post), "rain then cloud")
		assert.Equal(t, Rainy, Classify(pre+rain+post), "rain alone: %q", pre+rain+post)
		assert.Equal(t, Clear, Classify(pre+mid+post), "neither: %q", pre+mid+post)
	}
}

func TestMappingsAreTotal(t *testing.T) {
	backgrounds := map[AssetID]bool{}
	icons := map[AssetID]bool{}
	colors := map[Color]bool{}

	for _, c := range allClassifications {
		bg := BackgroundAsset(c)
		icon := ForecastIcon(c)
		color := ThemeColor(c)

		assert.NotEmpty(t, bg, c.String())
		assert.NotEmpty(t, icon, c.String())
		assert.NotZero(t, color, c.String())

		backgrounds[bg] = true
		icons[icon] = true
		colors[color] = true
	}

	// each classification gets its own resource
	assert.Len(t, backgrounds, len(allClassifications))
	assert.Len(t, icons, len(allClassifications))
	assert.Len(t, colors, len(allClassifications))

	// icons and backgrounds are separate namespaces
	for icon := range icons {
		assert.False(t, backgrounds[icon])
	}

	out := Classification(99)
	assert.Equal(t, BackgroundSunny, BackgroundAsset(out))
	assert.Equal(t, SunnyGreen, ThemeColor(out))
	assert.Equal(t, IconClear, ForecastIcon(out))
	assert.Equal(t, "Classification(99)", out.String())
}

func TestMappings(t *testing.T) {
	assert.Equal(t, BackgroundCloudy, BackgroundAsset(Cloudy))
	assert.Equal(t, BackgroundRainy, BackgroundAsset(Rainy))
	assert.Equal(t, BackgroundSunny, BackgroundAsset(Clear))

	assert.Equal(t, CloudyBlue, ThemeColor(Cloudy))
	assert.Equal(t, RainyGrey, ThemeColor(Rainy))
	assert.Equal(t, SunnyGreen, ThemeColor(Clear))

	assert.Equal(t, IconPartlySunny, ForecastIcon(Cloudy))
	assert.Equal(t, IconRain, ForecastIcon(Rainy))
	assert.Equal(t, IconClear, ForecastIcon(Clear))
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#FF54717A", CloudyBlue.Hex())
	assert.Equal(t, "#000000FF", Color(0xFF).Hex())
}

func TestFormatTemperature(t *testing.T) {
	assert.Equal(t, "17°", FormatTemperature(17.31))
	assert.Equal(t, "18°", FormatTemperature(17.5))
	assert.Equal(t, "-2°", FormatTemperature(-2.5))
	assert.Equal(t, "0°", FormatTemperature(-0.5))
	assert.Equal(t, "0°", FormatTemperature(-0.4))
	assert.Equal(t, "-3°", FormatTemperature(-2.51))
	assert.Equal(t, "1°", FormatTemperature(0.5))
}

func TestWeekday(t *testing.T) {
	// 2025-07-25 12:00 UTC
	assert.Equal(t, "Friday", Weekday(1753444800, time.UTC))
	assert.Equal(t, "Friday", Weekday(1753444800, nil))

	tokyo := time.FixedZone("JST", 9*3600)
	// 2025-07-25 20:00 UTC is already Saturday in Tokyo
	assert.Equal(t, "Saturday", Weekday(1753473600, tokyo))
}

func TestNewSummary(t *testing.T) {
	summary, err := NewSummary(models.CurrentWeather{
		Name:    "London",
		Main:    models.Temperature{Temp: 17.31, TempMin: 15.07, TempMax: 19.5},
		Weather: []models.Condition{{Main: "Clouds"}, {Main: "Rain"}},
	})
	require.NoError(t, err)

	assert.Equal(t, Summary{
		Name:           "London",
		Condition:      "Clouds",
		Classification: Cloudy,
		Temperature:    "17°",
		Min:            "15°",
		Max:            "20°",
		Background:     BackgroundCloudy,
		ThemeColor:     CloudyBlue,
	}, summary)

	_, err = NewSummary(models.CurrentWeather{Name: "Nowhere"})
	assert.ErrorIs(t, err, ErrNoConditions)
}

func TestNewForecastDays(t *testing.T) {
	days := NewForecastDays([]models.DailyForecast{
		{Dt: 1753444800, Temp: models.DayTemperature{Day: 21.43}, Weather: []models.Condition{{Main: "Rain"}}},
		{Dt: 1753531200, Temp: models.DayTemperature{Day: 19.02}},
		{Dt: 1753617600, Temp: models.DayTemperature{Day: 23.7}, Weather: []models.Condition{{Main: "Clear"}}},
	}, time.UTC)

	require.Len(t, days, 2)
	assert.Equal(t, ForecastDay{Weekday: "Friday", Icon: IconRain, Temperature: "21°", Condition: "Rain", Classification: Rainy}, days[0])
	assert.Equal(t, ForecastDay{Weekday: "Sunday", Icon: IconClear, Temperature: "24°", Condition: "Clear", Classification: Clear}, days[1])

	assert.Empty(t, NewForecastDays(nil, time.UTC))
}

func TestSummaryJSON(t *testing.T) {
	body, err := json.Marshal(Summary{Classification: Rainy, ThemeColor: RainyGrey})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"classification":"rainy"`)
	assert.Contains(t, string(body), `"theme_color":"#FF57575D"`)
}

func TestTextRoundTrip(t *testing.T) {
	var day ForecastDay
	require.NoError(t, json.Unmarshal([]byte(`{"classification":"cloudy","icon":"partlysunny"}`), &day))
	assert.Equal(t, Cloudy, day.Classification)
	assert.Equal(t, IconPartlySunny, day.Icon)

	var summary Summary
	require.NoError(t, json.Unmarshal([]byte(`{"theme_color":"#FF47AB2F"}`), &summary))
	assert.Equal(t, SunnyGreen, summary.ThemeColor)

	assert.Error(t, json.Unmarshal([]byte(`{"classification":"snowy"}`), &day))
	assert.Error(t, json.Unmarshal([]byte(`{"theme_color":"47AB2F"}`), &summary))
}
