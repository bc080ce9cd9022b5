package domain

import (
	shareddomain "church-finder-service/pkg/shared/domain"

	"github.com/golangid/candi/candishared"
)

// FilterMass model
type FilterMass struct {
	candishared.Filter
	ID       *string `json:"-"`
	ChurchID string  `json:"churchId,omitempty"`
	Day      string  `json:"day,omitempty"`
}

// RequestMass model
type RequestMass struct {
	ID          string `json:"id"`
	Time        string `json:"time"`
	Day         string `json:"day"`
	Description string `json:"description"`
	ChurchID    string `json:"churchId"`
}

// Deserialize to db model, time and church id must be normalized by the caller
func (r *RequestMass) Deserialize() (res shareddomain.Mass) {
	res.Time = r.Time
	res.Day = r.Day
	res.Description = r.Description
	return
}

// ResponseMass model
type ResponseMass struct {
	ID          string `json:"id"`
	Time        string `json:"time"`
	Day         string `json:"day"`
	Description string `json:"description,omitempty"`
	ChurchID    string `json:"churchId"`
}

// Serialize from db model
func (r *ResponseMass) Serialize(source *shareddomain.Mass) {
	r.ID = source.ID.Hex()
	r.Time = source.Time
	r.Day = source.Day
	r.Description = source.Description
	r.ChurchID = source.ChurchID.Hex()
}
