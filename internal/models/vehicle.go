package models

// Vehicle is any vehicle that can be served at a pump. Concrete kinds differ
// in how much fuel they ask for and how they describe themselves.
type Vehicle interface {
	LicensePlate() string
	FuelCapacity() float64
	CurrentFuelLevel() float64
	// Refuel adds amount litres to the tank, clamping at capacity.
	// Amounts <= 0 are ignored. It reports whether the fill hit the
	// capacity clamp.
	Refuel(amount float64) bool
	// RefuelAmount returns the litres the vehicle wants, before any
	// pump reserve constraint is applied.
	RefuelAmount() float64
	// Description returns a human-readable kind descriptor.
	Description() string
}

// tank holds the state shared by every vehicle kind. The fuel level is only
// mutated through Refuel, which keeps it in [0, capacity].
type tank struct {
	licensePlate string
	fuelCapacity float64
	fuelLevel    float64
}

func (t *tank) LicensePlate() string      { return t.licensePlate }
func (t *tank) FuelCapacity() float64     { return t.fuelCapacity }
func (t *tank) CurrentFuelLevel() float64 { return t.fuelLevel }

func (t *tank) Refuel(amount float64) bool {
	if amount <= 0 {
		return false
	}
	t.fuelLevel += amount
	if t.fuelLevel > t.fuelCapacity {
		t.fuelLevel = t.fuelCapacity
		return true
	}
	return false
}
