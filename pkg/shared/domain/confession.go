package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultLiveConfessionTTL applied when a live confession is created without expireAt
const DefaultLiveConfessionTTL = 30 * time.Minute

// RecurringConfession model, a weekly time window on one day of week (0 = Sunday)
type RecurringConfession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DayOfWeek int                `bson:"dayOfWeek" json:"dayOfWeek"`
	StartTime string             `bson:"startTime" json:"startTime"` // HH:mm
	EndTime   string             `bson:"endTime" json:"endTime"`     // HH:mm, must be greater than StartTime
	ChurchID  primitive.ObjectID `bson:"church,omitempty" json:"church,omitempty"`
}

// CollectionName return collection name of RecurringConfession model
func (RecurringConfession) CollectionName() string {
	return "recurringConfessions"
}

// LiveConfession model, one-off self-expiring window. The collection carries a TTL
// index on expireAt, mongo removes the document after the instant passes.
type LiveConfession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StartTime *time.Time         `bson:"startTime,omitempty" json:"startTime,omitempty"`
	ExpireAt  time.Time          `bson:"expireAt" json:"expireAt"`
	ChurchID  primitive.ObjectID `bson:"church,omitempty" json:"church,omitempty"`
}

// CollectionName return collection name of LiveConfession model
func (LiveConfession) CollectionName() string {
	return "liveConfessions"
}
