// Package presentation turns weather records into display values: a
// three-way classification of the condition, the background, colour and
// icon picked from it, and formatted temperatures and weekdays.
package presentation

import (
	"fmt"
	"strconv"
	"strings"
)

type Classification int

const (
	Clear Classification = iota
	Cloudy
	Rainy
)

func (c Classification) String() string {
	switch c {
	case Cloudy:
		return "cloudy"
	case Rainy:
		return "rainy"
	case Clear:
		return "clear"
	}
	return fmt.Sprintf("Classification(%d)", int(c))
}

func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Classification) UnmarshalText(text []byte) error {
	switch string(text) {
	case "clear":
		*c = Clear
	case "cloudy":
		*c = Cloudy
	case "rainy":
		*c = Rainy
	default:
		return fmt.Errorf("unknown classification %q", text)
	}
	return nil
}

// Classify reduces a condition category to a Classification. "cloud" is
// checked before "rain", so a category mentioning both is Cloudy.
func Classify(category string) Classification {
	category = strings.ToLower(category)
	switch {
	case strings.Contains(category, "cloud"):
		return Cloudy
	case strings.Contains(category, "rain"):
		return Rainy
	default:
		return Clear
	}
}

type AssetID string

const (
	BackgroundCloudy AssetID = "forest_cloudy"
	BackgroundRainy  AssetID = "forest_rainy"
	BackgroundSunny  AssetID = "forest_sunny"

	IconPartlySunny AssetID = "partlysunny"
	IconRain        AssetID = "rain"
	IconClear       AssetID = "clear"
)

// Color is an ARGB colour.
type Color uint32

const (
	CloudyBlue Color = 0xFF54717A
	RainyGrey  Color = 0xFF57575D
	SunnyGreen Color = 0xFF47AB2F
)

// Hex renders the colour as #AARRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	s, ok := strings.CutPrefix(string(text), "#")
	if !ok || len(s) != 8 {
		return fmt.Errorf("invalid colour %q", text)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid colour %q: %w", text, err)
	}
	*c = Color(v)
	return nil
}

// BackgroundAsset, ThemeColor and ForecastIcon cover every Classification;
// values outside the enum get the Clear entry.

func BackgroundAsset(c Classification) AssetID {
	switch c {
	case Cloudy:
		return BackgroundCloudy
	case Rainy:
		return BackgroundRainy
	default:
		return BackgroundSunny
	}
}

func ThemeColor(c Classification) Color {
	switch c {
	case Cloudy:
		return CloudyBlue
	case Rainy:
		return RainyGrey
	default:
		return SunnyGreen
	}
}

func ForecastIcon(c Classification) AssetID {
	switch c {
	case Cloudy:
		return IconPartlySunny
	case Rainy:
		return IconRain
	default:
		return IconClear
	}
}
