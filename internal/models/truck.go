package models

import (
	"fmt"
	"math"
)

const (
	// TruckFuelCapacity is the fixed tank size for trucks, in litres.
	TruckFuelCapacity = 200.0
	// truckRefuelIncrement is the bulk step trucks are refuelled in.
	truckRefuelIncrement = 100.0
)

// Truck is a heavy vehicle refuelled in bulk increments rather than
// exact top-offs.
type Truck struct {
	tank
	isDiesel bool
}

// NewTruck creates a truck with the given plate, starting fuel level and
// diesel flag.
func NewTruck(licensePlate string, currentFuelLevel float64, isDiesel bool) *Truck {
	return &Truck{
		tank: tank{
			licensePlate: licensePlate,
			fuelCapacity: TruckFuelCapacity,
			fuelLevel:    currentFuelLevel,
		},
		isDiesel: isDiesel,
	}
}

// IsDiesel reports whether the truck runs on diesel.
func (t *Truck) IsDiesel() bool { return t.isDiesel }

// RefuelAmount rounds the needed quantity up to the next 100 L increment.
// A full tank needs 0 L, which stays 0.
func (t *Truck) RefuelAmount() float64 {
	needed := t.fuelCapacity - t.fuelLevel
	return math.Ceil(needed/truckRefuelIncrement) * truckRefuelIncrement
}

func (t *Truck) Description() string {
	diesel := "No"
	if t.isDiesel {
		diesel = "Yes"
	}
	return fmt.Sprintf("Truck (Diesel: %s)", diesel)
}
