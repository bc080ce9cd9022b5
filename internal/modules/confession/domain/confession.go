package domain

import (
	"time"

	shareddomain "church-finder-service/pkg/shared/domain"

	"github.com/golangid/candi/candishared"
)

// FilterConfession model
type FilterConfession struct {
	candishared.Filter
	ID       *string `json:"-"`
	ChurchID string  `json:"churchId,omitempty"`
}

// RequestRecurringConfession model
type RequestRecurringConfession struct {
	ID        string `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	ChurchID  string `json:"churchId"`
}

// Deserialize to db model, times must be normalized by the caller
func (r *RequestRecurringConfession) Deserialize() (res shareddomain.RecurringConfession) {
	res.DayOfWeek = r.DayOfWeek
	res.StartTime = r.StartTime
	res.EndTime = r.EndTime
	return
}

// RequestLiveConfession model. ExpireAt defaults to 30 minutes from now when omitted.
type RequestLiveConfession struct {
	ChurchID  string     `json:"churchId"`
	StartTime *time.Time `json:"startTime,omitempty"`
	ExpireAt  *time.Time `json:"expireAt,omitempty"`
}

// ResponseRecurringConfession model
type ResponseRecurringConfession struct {
	ID        string `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	ChurchID  string `json:"churchId"`
}

// Serialize from db model
func (r *ResponseRecurringConfession) Serialize(source *shareddomain.RecurringConfession) {
	r.ID = source.ID.Hex()
	r.DayOfWeek = source.DayOfWeek
	r.StartTime = source.StartTime
	r.EndTime = source.EndTime
	r.ChurchID = source.ChurchID.Hex()
}

// ResponseLiveConfession model
type ResponseLiveConfession struct {
	ID        string     `json:"id"`
	StartTime *time.Time `json:"startTime,omitempty"`
	ExpireAt  time.Time  `json:"expireAt"`
	ChurchID  string     `json:"churchId"`
}

// Serialize from db model
func (r *ResponseLiveConfession) Serialize(source *shareddomain.LiveConfession) {
	r.ID = source.ID.Hex()
	r.StartTime = source.StartTime
	r.ExpireAt = source.ExpireAt
	r.ChurchID = source.ChurchID.Hex()
}
