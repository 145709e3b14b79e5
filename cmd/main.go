package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/stationops/fuel-station/internal/auth"
	"github.com/stationops/fuel-station/internal/db"
	"github.com/stationops/fuel-station/internal/handlers"
	"github.com/stationops/fuel-station/internal/middleware"
)

func main() {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	log.Info("Connected to MongoDB")

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "fuel_station"
	}
	database := client.Database(dbName)

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to create auth service")
	}

	userCollection := &db.MongoUserCollection{Collection: database.Collection("users")}
	transactionCollection := &db.MongoTransactionCollection{Collection: database.Collection("transactions")}
	pumpCollection := &db.MongoPumpCollection{Collection: database.Collection("pumps")}
	stationCollection := &db.MongoStationCollection{Collection: database.Collection("stations")}

	authHandler := handlers.NewAuthHandler(authService, userCollection)
	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.HandleFunc("/api/auth/profile", authHandler.Profile)
	mux.HandleFunc("/api/auth/password", authHandler.ChangePassword)
	mux.Handle("/api/transactions", &handlers.TransactionHandler{Collection: transactionCollection})
	mux.Handle("/api/pumps", &handlers.PumpHandler{Collection: pumpCollection})
	mux.Handle("/api/stations", &handlers.StationHandler{Collection: stationCollection})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	handler := rateLimiter.RateLimit(100, 60)(authMiddleware.Authenticate(mux))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("HTTP server listening")
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
