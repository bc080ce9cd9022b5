package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Day class for mass schedule, binary by design of the schedule store
const (
	DaySunday  = "sunday"
	DayWeekday = "weekday"
)

// Mass model, a fixed weekly slot without explicit end time
type Mass struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Time        string             `bson:"time" json:"time"` // HH:mm, 24h
	Day         string             `bson:"day" json:"day"`   // sunday|weekday
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ChurchID    primitive.ObjectID `bson:"church,omitempty" json:"church,omitempty"`
}

// CollectionName return collection name of Mass model
func (Mass) CollectionName() string {
	return "masses"
}
