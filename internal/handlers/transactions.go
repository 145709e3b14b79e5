package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/stationops/fuel-station/internal/db"
	"github.com/stationops/fuel-station/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// TransactionHandler serves the fuel transaction records API.
type TransactionHandler struct {
	Collection db.TransactionCollection
}

func (h *TransactionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.record(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *TransactionHandler) record(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	var tx models.Transaction
	if err := json.Unmarshal(body, &tx); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if tx.PumpID <= 0 {
		http.Error(w, "pump_id must be positive", http.StatusBadRequest)
		return
	}
	if tx.LicensePlate == "" {
		http.Error(w, "license_plate is required", http.StatusBadRequest)
		return
	}
	if tx.Dispensed < 0 || tx.TotalCost < 0 {
		http.Error(w, "dispensed and total_cost must be non-negative", http.StatusBadRequest)
		return
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now()
	}

	if err := h.Collection.InsertTransaction(r.Context(), tx); err != nil {
		http.Error(w, "Failed to store transaction", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "Transaction recorded"})
}

func (h *TransactionHandler) list(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if pumpStr := r.URL.Query().Get("pump_id"); pumpStr != "" {
		pumpID, err := strconv.Atoi(pumpStr)
		if err != nil {
			http.Error(w, "pump_id must be an integer", http.StatusBadRequest)
			return
		}
		filter["pump_id"] = pumpID
	}

	cursor, err := h.Collection.FindTransactions(r.Context(), filter)
	if err != nil {
		http.Error(w, "Failed to query transactions", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(r.Context())

	var results []models.Transaction
	if err := cursor.All(r.Context(), &results); err != nil {
		http.Error(w, "Failed to decode transactions", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []models.Transaction{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(results)
}
