package domain

import "fmt"

// Location is an operator-supplied geolocation attached to analyses.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MapURL returns a maps link pointing at the location.
func (l Location) MapURL() string {
	return fmt.Sprintf("https://www.google.com/maps?q=%v,%v", l.Latitude, l.Longitude)
}
