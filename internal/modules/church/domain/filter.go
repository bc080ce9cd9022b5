package domain

import (
	"time"

	"church-finder-service/pkg/shared/schedule"

	"github.com/golangid/candi/candishared"
)

// FilterChurch model
type FilterChurch struct {
	candishared.Filter
	ID          *string `json:"-"`
	City        string  `json:"city,omitempty"`
	IsCathedral *bool   `json:"isCathedral,omitempty"`
}

// FilterNearbyChurch normalized parameters for the geo-temporal query, already
// validated by the usecase
type FilterNearbyChurch struct {
	Longitude float64
	Latitude  float64
	RadiusKm  float64
	Day       string
	DayOfWeek int
	Time      schedule.TimeFilter
	Limit     int64
}

// FilterMassSchedule parameters for searching churches by mass time, scoped by
// city or by a coordinate with radius when Longitude/Latitude are set
type FilterMassSchedule struct {
	Time      schedule.TimeFilter
	Day       string
	City      string
	Longitude *float64
	Latitude  *float64
	RadiusKm  float64
}

// FilterConfessionSchedule parameters for searching churches by active
// confession, scoped the same way as FilterMassSchedule. Live sessions only
// qualify when the requested day is the current one, At carries the instant
// their expiry is compared against.
type FilterConfessionSchedule struct {
	TimeOfDay   string
	DayOfWeek   int
	IncludeLive bool
	At          time.Time
	City        string
	Longitude   *float64
	Latitude    *float64
	RadiusKm    float64
}
