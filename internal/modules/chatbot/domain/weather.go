package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// WeatherFeed observation station feed, samples ordered newest first
type WeatherFeed struct {
	Observations struct {
		Data []Observation `json:"data"`
	} `json:"observations"`
}

// Observation single station sample
type Observation struct {
	Name          string    `json:"name,omitempty"`
	LocalDateTime string    `json:"local_date_time_full,omitempty"`
	RainTrace     RainTrace `json:"rain_trace"`
}

// RainTrace cumulative rainfall (mm) since 9am, the feed encode it as number or quoted number
type RainTrace float64

// UnmarshalJSON accept number, quoted number, and "-" or empty string as zero
func (r *RainTrace) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(strings.Trim(string(b), `"`))
	switch raw {
	case "", "-", "null":
		*r = 0
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid rain_trace %s: %w", b, err)
	}
	*r = RainTrace(f)
	return nil
}

// WeatherState derived fresh per request
type WeatherState struct {
	IsRaining bool `json:"is_raining"`
}

// NewWeatherState compare exactly the two most recent samples, raining iff the newest trace grew
func NewWeatherState(observations []Observation) WeatherState {
	if len(observations) < 2 {
		return WeatherState{}
	}
	return WeatherState{IsRaining: observations[0].RainTrace > observations[1].RainTrace}
}
