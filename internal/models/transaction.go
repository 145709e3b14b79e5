package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction records a single dispensing of fuel from a pump to a vehicle.
type Transaction struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PumpID        int                `bson:"pump_id" json:"pump_id"`
	LicensePlate  string             `bson:"license_plate" json:"license_plate"`
	VehicleType   string             `bson:"vehicle_type" json:"vehicle_type"`
	LevelBefore   float64            `bson:"level_before" json:"level_before"`     // litres
	LevelAfter    float64            `bson:"level_after" json:"level_after"`       // litres
	Requested     float64            `bson:"requested" json:"requested"`           // litres
	Dispensed     float64            `bson:"dispensed" json:"dispensed"`           // litres
	PricePerLitre float64            `bson:"price_per_litre" json:"price_per_litre"`
	TotalCost     float64            `bson:"total_cost" json:"total_cost"` // in USD
	ReserveAfter  float64            `bson:"reserve_after" json:"reserve_after"`   // litres
	TankFull      bool               `bson:"tank_full" json:"tank_full"`           // fill hit the capacity clamp
	Shortfall     bool               `bson:"shortfall" json:"shortfall"`           // pump reserve could not cover the request
	Timestamp     time.Time          `bson:"timestamp" json:"timestamp"`
}
