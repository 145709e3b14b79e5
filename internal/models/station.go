package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location represents a geographical location with latitude and longitude coordinates.
type Location struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lon float64 `bson:"lon" json:"lon"`
}

// StationInfo is the registry record for a fuel station site.
type StationInfo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Address   string             `bson:"address" json:"address"`
	Location  Location           `bson:"location" json:"location"`
	Status    string             `bson:"status" json:"status"` // "open" or "closed"
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
