package models

import "fmt"

// CarFuelCapacity is the fixed tank size for cars, in litres.
const CarFuelCapacity = 50.0

// Car is a passenger vehicle that gets an exact top-off.
type Car struct {
	tank
	fuelType string
}

// NewCar creates a car with the given plate and starting fuel level.
func NewCar(licensePlate string, currentFuelLevel float64) *Car {
	return &Car{
		tank: tank{
			licensePlate: licensePlate,
			fuelCapacity: CarFuelCapacity,
			fuelLevel:    currentFuelLevel,
		},
		fuelType: "Regular Unleaded",
	}
}

// RefuelAmount is the exact quantity needed to fill the tank.
func (c *Car) RefuelAmount() float64 {
	return c.fuelCapacity - c.fuelLevel
}

func (c *Car) Description() string {
	return fmt.Sprintf("Car (Fuel: %s)", c.fuelType)
}
