package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pump dispenses fuel from a finite reserve at a fixed price per litre.
// The reserve is only mutated through Dispense, which keeps it non-negative.
type Pump struct {
	id            int
	pricePerLitre float64
	reserve       float64
}

// NewPump creates a pump with the given identifier, price per litre and
// initial reserve in litres.
func NewPump(id int, pricePerLitre, initialReserve float64) *Pump {
	return &Pump{
		id:            id,
		pricePerLitre: pricePerLitre,
		reserve:       initialReserve,
	}
}

func (p *Pump) ID() int                { return p.id }
func (p *Pump) PricePerLitre() float64 { return p.pricePerLitre }

// Reserve returns the litres the pump can still dispense.
func (p *Pump) Reserve() float64 { return p.reserve }

// Serve computes the vehicle's desired refuel amount and dispenses it.
func (p *Pump) Serve(v Vehicle) Transaction {
	return p.Dispense(v, v.RefuelAmount())
}

// Dispense transfers up to amount litres to the vehicle, bounded by the
// remaining reserve. A shortfall degrades to a partial fill and is flagged
// on the returned transaction; there is no error path.
func (p *Pump) Dispense(v Vehicle, amount float64) Transaction {
	tx := Transaction{
		PumpID:        p.id,
		LicensePlate:  v.LicensePlate(),
		VehicleType:   v.Description(),
		LevelBefore:   v.CurrentFuelLevel(),
		Requested:     amount,
		PricePerLitre: p.pricePerLitre,
		Timestamp:     time.Now(),
	}

	if amount < 0 {
		amount = 0
	}
	if amount > p.reserve {
		amount = p.reserve
		tx.Shortfall = true
	}

	p.reserve -= amount
	tx.Dispensed = amount
	tx.TotalCost = amount * p.pricePerLitre
	tx.TankFull = v.Refuel(amount)
	tx.LevelAfter = v.CurrentFuelLevel()
	tx.ReserveAfter = p.reserve
	return tx
}

// Snapshot returns the pump's persistable state.
func (p *Pump) Snapshot() PumpState {
	return PumpState{
		PumpID:        p.id,
		PricePerLitre: p.pricePerLitre,
		ReserveLitres: p.reserve,
	}
}

// PumpState is the persisted form of a pump.
type PumpState struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PumpID        int                `bson:"pump_id" json:"pump_id"`
	StationID     string             `bson:"station_id" json:"station_id"`
	PricePerLitre float64            `bson:"price_per_litre" json:"price_per_litre"`
	ReserveLitres float64            `bson:"reserve_litres" json:"reserve_litres"`
	Status        string             `bson:"status" json:"status"` // "in_service" or "out_of_service"
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// Pump reconstructs a dispensing pump from persisted state.
func (s PumpState) Pump() *Pump {
	return NewPump(s.PumpID, s.PricePerLitre, s.ReserveLitres)
}
