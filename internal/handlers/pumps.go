package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/stationops/fuel-station/internal/db"
	"github.com/stationops/fuel-station/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// PumpHandler serves the pump registry API.
type PumpHandler struct {
	Collection db.PumpCollection
}

func (h *PumpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.register(w, r)
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPut:
		h.updateReserve(w, r)
	case http.MethodDelete:
		h.remove(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *PumpHandler) register(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	var state models.PumpState
	if err := json.Unmarshal(body, &state); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if state.PumpID <= 0 {
		http.Error(w, "pump_id must be positive", http.StatusBadRequest)
		return
	}
	if state.PricePerLitre <= 0 {
		http.Error(w, "price_per_litre must be positive", http.StatusBadRequest)
		return
	}
	if state.ReserveLitres < 0 {
		http.Error(w, "reserve_litres must be non-negative", http.StatusBadRequest)
		return
	}
	if state.Status == "" {
		state.Status = "in_service"
	}
	state.UpdatedAt = time.Now()

	if err := h.Collection.InsertPump(r.Context(), state); err != nil {
		http.Error(w, "Failed to register pump", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "Pump registered"})
}

func (h *PumpHandler) list(w http.ResponseWriter, r *http.Request) {
	cursor, err := h.Collection.FindPumps(r.Context(), bson.M{})
	if err != nil {
		http.Error(w, "Failed to query pumps", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(r.Context())

	var results []models.PumpState
	if err := cursor.All(r.Context(), &results); err != nil {
		http.Error(w, "Failed to decode pumps", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []models.PumpState{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(results)
}

func (h *PumpHandler) updateReserve(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	var updateReq struct {
		PumpID        int     `json:"pump_id"`
		ReserveLitres float64 `json:"reserve_litres"`
	}
	if err := json.Unmarshal(body, &updateReq); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if updateReq.PumpID <= 0 {
		http.Error(w, "pump_id must be positive", http.StatusBadRequest)
		return
	}
	if updateReq.ReserveLitres < 0 {
		http.Error(w, "reserve_litres must be non-negative", http.StatusBadRequest)
		return
	}

	if err := h.Collection.UpdatePumpReserve(r.Context(), updateReq.PumpID, updateReq.ReserveLitres); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Pump not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update pump", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Pump reserve updated"})
}

func (h *PumpHandler) remove(w http.ResponseWriter, r *http.Request) {
	pumpStr := r.URL.Query().Get("pump_id")
	pumpID, err := strconv.Atoi(pumpStr)
	if err != nil || pumpID <= 0 {
		http.Error(w, "pump_id must be a positive integer", http.StatusBadRequest)
		return
	}

	if err := h.Collection.DeletePump(r.Context(), pumpID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Pump not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete pump", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Pump deleted"})
}
