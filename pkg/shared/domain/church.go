package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location GeoJSON point, coordinates ordered [longitude, latitude]
type Location struct {
	Type        string     `bson:"type" json:"type"`
	Coordinates [2]float64 `bson:"coordinates" json:"coordinates"`
}

// NewPointLocation location constructor
func NewPointLocation(lng, lat float64) Location {
	return Location{Type: "Point", Coordinates: [2]float64{lng, lat}}
}

// Church model
type Church struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	City        string             `bson:"city" json:"city"`
	Address     string             `bson:"address" json:"address"`
	Location    Location           `bson:"location" json:"location"`
	IsCathedral bool               `bson:"isCathedral" json:"isCathedral"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
}

// CollectionName return collection name of Church model
func (Church) CollectionName() string {
	return "churches"
}

// NearbyChurch geo query result, a church with its computed distance and the
// schedule documents joined from the mass and confession collections
type NearbyChurch struct {
	Church               `bson:",inline"`
	Distance             float64               `bson:"distance"`
	Masses               []Mass                `bson:"masses"`
	LiveConfessions      []LiveConfession      `bson:"liveConfessions"`
	RecurringConfessions []RecurringConfession `bson:"recurringConfessions"`
}
