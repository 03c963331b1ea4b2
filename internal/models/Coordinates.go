package models

import "fmt"

type Coordinates struct {
	Lat float64 `json:"lat" example:"51.5074"`
	Lon float64 `json:"lon" example:"-0.1278"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f", c.Lat, c.Lon)
}
