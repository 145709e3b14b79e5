package db

import (
	"context"

	"github.com/stationops/fuel-station/internal/models"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TransactionCollection defines the interface for fuel transaction records.
type TransactionCollection interface {
	InsertTransaction(ctx context.Context, tx models.Transaction) error
	FindTransactions(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (TransactionCursor, error)
}

// TransactionCursor defines the interface for transaction cursor operations.
type TransactionCursor interface {
	All(ctx context.Context, out interface{}) error
	Close(ctx context.Context) error
}

// PumpCollection defines the interface for pump state operations.
type PumpCollection interface {
	InsertPump(ctx context.Context, state models.PumpState) error
	FindPumps(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (PumpCursor, error)
	FindPumpByID(ctx context.Context, pumpID int) (*models.PumpState, error)
	UpdatePumpReserve(ctx context.Context, pumpID int, reserveLitres float64) error
	DeletePump(ctx context.Context, pumpID int) error
}

// PumpCursor defines the interface for pump cursor operations.
type PumpCursor interface {
	All(ctx context.Context, out interface{}) error
	Close(ctx context.Context) error
}

// StationCollection defines the interface for station registry operations.
type StationCollection interface {
	InsertStation(ctx context.Context, info models.StationInfo) error
	FindStations(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (StationCursor, error)
}

// StationCursor defines the interface for station cursor operations.
type StationCursor interface {
	All(ctx context.Context, out interface{}) error
	Close(ctx context.Context) error
}
