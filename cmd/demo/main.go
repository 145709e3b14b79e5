package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/stationops/fuel-station/internal/db"
	"github.com/stationops/fuel-station/internal/events"
	"github.com/stationops/fuel-station/internal/models"
	"github.com/stationops/fuel-station/internal/station"
)

// buildStation wires the demo forecourt: two pumps with fixed prices
// and reserves.
func buildStation() *station.Station {
	s := station.New("Demo Forecourt")
	s.AddPump(models.NewPump(1, 1.55, 500.0))
	s.AddPump(models.NewPump(2, 1.40, 50.0))
	return s
}

func main() {
	_ = godotenv.Load()

	s := buildStation()

	// Transaction persistence is optional for the demo
	if os.Getenv("MONGO_URI") != "" {
		client, err := db.ConnectMongo()
		if err != nil {
			log.WithError(err).Warn("MongoDB unavailable, transactions will not be persisted")
		} else {
			defer client.Disconnect(context.Background())
			dbName := os.Getenv("MONGO_DB")
			if dbName == "" {
				dbName = "fuel_station"
			}
			s.Transactions = &db.MongoTransactionCollection{
				Collection: client.Database(dbName).Collection("transactions"),
			}
		}
	}

	// So is event publishing
	if broker := os.Getenv("MQTT_BROKER"); broker != "" {
		publisher, err := events.NewMQTTPublisher(broker, "fuel-station-demo")
		if err != nil {
			log.WithError(err).Warn("MQTT broker unavailable, transactions will not be published")
		} else {
			defer publisher.Close()
			s.Publisher = publisher
		}
	}

	fmt.Println("<<< FUEL STATION MANAGEMENT SYSTEM DEMO >>>")

	sedan := models.NewCar("ABC-123", 10.0)
	hauler := models.NewTruck("XYZ-987", 50.0, true)

	ctx := context.Background()

	// Car tops off at pump 1
	if _, err := s.Serve(ctx, 1, sedan); err != nil {
		log.WithError(err).Error("Transaction failed")
	}

	// Truck bulk-fills at pump 1
	if _, err := s.Serve(ctx, 1, hauler); err != nil {
		log.WithError(err).Error("Transaction failed")
	}

	// The now-full car visits the low-reserve pump 2
	if _, err := s.Serve(ctx, 2, sedan); err != nil {
		log.WithError(err).Error("Transaction failed")
	}

	fmt.Println("\n<<< DEMO COMPLETE >>>")
	fmt.Printf("Final check: Truck %s has %.2f L of fuel.\n",
		hauler.LicensePlate(), hauler.CurrentFuelLevel())
}
