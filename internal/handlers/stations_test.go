package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stationops/fuel-station/internal/db"
	"github.com/stationops/fuel-station/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mockStationCollection struct {
	insertErr  error
	findErr    error
	inserted   []models.StationInfo
	results    []models.StationInfo
	lastFilter interface{}
}

func (m *mockStationCollection) InsertStation(ctx context.Context, info models.StationInfo) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, info)
	return nil
}

func (m *mockStationCollection) FindStations(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (db.StationCursor, error) {
	m.lastFilter = filter
	if m.findErr != nil {
		return nil, m.findErr
	}
	return &mockStationCursor{results: m.results}, nil
}

type mockStationCursor struct {
	results []models.StationInfo
}

func (m *mockStationCursor) All(ctx context.Context, out interface{}) error {
	dst, ok := out.(*[]models.StationInfo)
	if !ok {
		return errors.New("unexpected output type")
	}
	*dst = m.results
	return nil
}

func (m *mockStationCursor) Close(ctx context.Context) error { return nil }

func TestStationHandler_POST_Valid(t *testing.T) {
	coll := &mockStationCollection{}
	handler := &StationHandler{Collection: coll}

	info := models.StationInfo{
		Name:     "Demo Forecourt",
		Address:  "1 Main St",
		Location: models.Location{Lat: 51.5, Lon: -0.1},
	}
	data, _ := json.Marshal(info)
	req := httptest.NewRequest(http.MethodPost, "/api/stations", bytes.NewBuffer(data))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if len(coll.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(coll.inserted))
	}
	if coll.inserted[0].Status != "open" {
		t.Errorf("expected default status, got %q", coll.inserted[0].Status)
	}
}

func TestStationHandler_POST_Validation(t *testing.T) {
	tests := []struct {
		name string
		info models.StationInfo
	}{
		{"missing name", models.StationInfo{Address: "1 Main St"}},
		{"bad status", models.StationInfo{Name: "Demo Forecourt", Status: "derelict"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, _ := json.Marshal(tt.info)
			req := httptest.NewRequest(http.MethodPost, "/api/stations", bytes.NewBuffer(data))
			w := httptest.NewRecorder()

			handler := &StationHandler{Collection: &mockStationCollection{}}
			handler.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestStationHandler_GET_ReturnsStations(t *testing.T) {
	coll := &mockStationCollection{results: []models.StationInfo{
		{Name: "Demo Forecourt", Status: "open"},
		{Name: "North Depot", Status: "closed"},
	}}
	handler := &StationHandler{Collection: coll}

	req := httptest.NewRequest(http.MethodGet, "/api/stations", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var results []models.StationInfo
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(results) != 2 || results[1].Name != "North Depot" {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestStationHandler_GET_StatusFilter(t *testing.T) {
	coll := &mockStationCollection{}
	handler := &StationHandler{Collection: coll}

	req := httptest.NewRequest(http.MethodGet, "/api/stations?status=open", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	filter, ok := coll.lastFilter.(bson.M)
	if !ok || filter["status"] != "open" {
		t.Errorf("unexpected filter: %v", coll.lastFilter)
	}
}

func TestStationHandler_GET_DBError(t *testing.T) {
	handler := &StationHandler{Collection: &mockStationCollection{findErr: errors.New("db error")}}
	req := httptest.NewRequest(http.MethodGet, "/api/stations", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestStationHandler_MethodNotAllowed(t *testing.T) {
	handler := &StationHandler{Collection: &mockStationCollection{}}
	req := httptest.NewRequest(http.MethodDelete, "/api/stations", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
