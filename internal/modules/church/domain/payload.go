package domain

import (
	"time"

	shareddomain "church-finder-service/pkg/shared/domain"
)

// RequestChurch model
type RequestChurch struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsCathedral bool    `json:"isCathedral"`
	Image       string  `json:"image"`
}

// Deserialize to db model
func (r *RequestChurch) Deserialize() (res shareddomain.Church) {
	res.Name = r.Name
	res.City = r.City
	res.Address = r.Address
	res.Location = shareddomain.NewPointLocation(r.Longitude, r.Latitude)
	res.IsCathedral = r.IsCathedral
	res.Image = r.Image
	return
}

// ResponseChurch model. Masses and RecurringConfessions are only populated on
// the detail lookup, list responses leave them empty.
type ResponseChurch struct {
	ID                   string                       `json:"id"`
	Name                 string                       `json:"name"`
	City                 string                       `json:"city"`
	Address              string                       `json:"address"`
	Latitude             float64                      `json:"latitude"`
	Longitude            float64                      `json:"longitude"`
	IsCathedral          bool                         `json:"isCathedral"`
	Image                string                       `json:"image,omitempty"`
	Masses               []ResponseMassSchedule       `json:"masses,omitempty"`
	RecurringConfessions []ResponseConfessionSchedule `json:"recurringConfessions,omitempty"`
}

// Serialize from db model
func (r *ResponseChurch) Serialize(source *shareddomain.Church) {
	r.ID = source.ID.Hex()
	r.Name = source.Name
	r.City = source.City
	r.Address = source.Address
	r.Longitude = source.Location.Coordinates[0]
	r.Latitude = source.Location.Coordinates[1]
	r.IsCathedral = source.IsCathedral
	r.Image = source.Image
}

// ResponseMassSchedule mass entry embedded in the nearby church response
type ResponseMassSchedule struct {
	ID          string `json:"id"`
	Time        string `json:"time"`
	Day         string `json:"day"`
	Description string `json:"description,omitempty"`
}

// ResponseConfessionSchedule recurring confession entry embedded in the church detail
type ResponseConfessionSchedule struct {
	ID        string `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Confession kinds in the nearby church response
const (
	ConfessionKindLive      = "live"
	ConfessionKindRecurring = "recurring"
)

// ActiveConfession single confession schedule selected for the requested moment,
// either live (priest currently available) or recurring (weekly window)
type ActiveConfession struct {
	Kind      string     `json:"kind"`
	ID        string     `json:"id"`
	StartTime string     `json:"startTime,omitempty"`
	EndTime   string     `json:"endTime,omitempty"`
	ExpireAt  *time.Time `json:"expireAt,omitempty"`
}

// ResolveActiveConfession pick the confession shown for a church: a live session
// still valid at now wins over any recurring window, recurring windows only count
// on the requested day of week when they end after the requested time of day.
func ResolveActiveConfession(source *shareddomain.NearbyChurch, now time.Time, dayOfWeek int, timeOfDay string) *ActiveConfession {
	for _, live := range source.LiveConfessions {
		if live.ExpireAt.After(now) {
			expireAt := live.ExpireAt
			active := &ActiveConfession{
				Kind:     ConfessionKindLive,
				ID:       live.ID.Hex(),
				ExpireAt: &expireAt,
			}
			if live.StartTime != nil {
				active.StartTime = live.StartTime.Format(time.RFC3339)
			}
			return active
		}
	}

	for _, recurring := range source.RecurringConfessions {
		if recurring.DayOfWeek == dayOfWeek && recurring.EndTime > timeOfDay {
			return &ActiveConfession{
				Kind:      ConfessionKindRecurring,
				ID:        recurring.ID.Hex(),
				StartTime: recurring.StartTime,
				EndTime:   recurring.EndTime,
			}
		}
	}

	return nil
}

// ResponseNearbyChurch model
type ResponseNearbyChurch struct {
	ResponseChurch
	Distance         float64                `json:"distance"`
	Masses           []ResponseMassSchedule `json:"masses"`
	ActiveConfession *ActiveConfession      `json:"activeConfession,omitempty"`
	ProfilesData     map[string]interface{} `json:"profilesData,omitempty"`
}

// Serialize from geo query result, profilesData is attached later by the
// route enrichment step
func (r *ResponseNearbyChurch) Serialize(source *shareddomain.NearbyChurch, now time.Time, dayOfWeek int, timeOfDay string) {
	r.ResponseChurch.Serialize(&source.Church)
	r.Distance = source.Distance
	r.Masses = make([]ResponseMassSchedule, 0, len(source.Masses))
	for _, mass := range source.Masses {
		r.Masses = append(r.Masses, ResponseMassSchedule{
			ID:          mass.ID.Hex(),
			Time:        mass.Time,
			Day:         mass.Day,
			Description: mass.Description,
		})
	}
	r.ActiveConfession = ResolveActiveConfession(source, now, dayOfWeek, timeOfDay)
}
