package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/stationops/fuel-station/internal/db"
	"github.com/stationops/fuel-station/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// StationHandler serves the station registry API.
type StationHandler struct {
	Collection db.StationCollection
}

func (h *StationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.register(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *StationHandler) register(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	var info models.StationInfo
	if err := json.Unmarshal(body, &info); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if info.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if info.Status == "" {
		info.Status = "open"
	}
	if info.Status != "open" && info.Status != "closed" {
		http.Error(w, "status must be open or closed", http.StatusBadRequest)
		return
	}

	if err := h.Collection.InsertStation(r.Context(), info); err != nil {
		http.Error(w, "Failed to register station", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"message": "Station registered"})
}

func (h *StationHandler) list(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	cursor, err := h.Collection.FindStations(r.Context(), filter)
	if err != nil {
		http.Error(w, "Failed to query stations", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(r.Context())

	var results []models.StationInfo
	if err := cursor.All(r.Context(), &results); err != nil {
		http.Error(w, "Failed to decode stations", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []models.StationInfo{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(results)
}
