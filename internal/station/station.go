package station

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/stationops/fuel-station/internal/db"
	"github.com/stationops/fuel-station/internal/events"
	"github.com/stationops/fuel-station/internal/models"
)

// Station orchestrates refuel transactions across its pumps. Each served
// transaction is reported line by line on Out; persistence and event
// publishing are optional and never fatal.
type Station struct {
	Name         string
	Out          io.Writer
	Transactions db.TransactionCollection
	Publisher    events.Publisher

	pumps map[int]*models.Pump
}

// New creates a station with no pumps, reporting to stdout.
func New(name string) *Station {
	return &Station{
		Name:  name,
		Out:   os.Stdout,
		pumps: make(map[int]*models.Pump),
	}
}

// AddPump registers a pump with the station, replacing any pump with the
// same id.
func (s *Station) AddPump(p *models.Pump) {
	s.pumps[p.ID()] = p
}

// Pump returns the pump with the given id.
func (s *Station) Pump(id int) (*models.Pump, bool) {
	p, ok := s.pumps[id]
	return p, ok
}

// Serve runs a refuel transaction for the vehicle at the given pump and
// reports it. The only error is an unknown pump id; dispensing itself
// degrades gracefully and never fails.
func (s *Station) Serve(ctx context.Context, pumpID int, v models.Vehicle) (models.Transaction, error) {
	pump, ok := s.pumps[pumpID]
	if !ok {
		return models.Transaction{}, fmt.Errorf("pump %d not found", pumpID)
	}

	tx := pump.Serve(v)
	s.report(tx)

	log.WithFields(log.Fields{
		"station":       s.Name,
		"pump_id":       tx.PumpID,
		"license_plate": tx.LicensePlate,
		"dispensed":     tx.Dispensed,
		"total_cost":    tx.TotalCost,
		"reserve_after": tx.ReserveAfter,
	}).Info("Transaction completed")

	if s.Transactions != nil {
		if err := s.Transactions.InsertTransaction(ctx, tx); err != nil {
			log.WithError(err).Error("Failed to persist transaction")
		}
	}
	if s.Publisher != nil {
		if err := s.Publisher.PublishTransaction(tx); err != nil {
			log.WithError(err).Error("Failed to publish transaction")
		}
	}

	return tx, nil
}

// report writes the line-oriented transaction report. Litre quantities and
// costs use two decimal places.
func (s *Station) report(tx models.Transaction) {
	fmt.Fprintln(s.Out, "\n-------------------------------------------")
	fmt.Fprintf(s.Out, "Pump %d serving %s\n", tx.PumpID, tx.LicensePlate)
	fmt.Fprintf(s.Out, "Vehicle Type: %s\n", tx.VehicleType)
	fmt.Fprintf(s.Out, "Current Level: %.2f L. Needs: %.2f L.\n", tx.LevelBefore, tx.Requested)
	if tx.Shortfall {
		fmt.Fprintf(s.Out, "ERROR: Not enough fuel! Only %.2f L left in pump.\n", tx.Dispensed)
	}
	if tx.TankFull {
		fmt.Fprintln(s.Out, "Tank is now full!")
	}
	fmt.Fprintf(s.Out, "Dispensed %.2f L. Total Cost: $%.2f\n", tx.Dispensed, tx.TotalCost)
	fmt.Fprintf(s.Out, "Pump %d Reserve remaining: %.2f L\n", tx.PumpID, tx.ReserveAfter)
}
