package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stationops/fuel-station/internal/db"
	"github.com/stationops/fuel-station/internal/models"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mockPumpCollection struct {
	insertErr  error
	findErr    error
	updateErr  error
	deleteErr  error
	inserted   []models.PumpState
	results    []models.PumpState
	updated    map[int]float64
	deletedIDs []int
}

func (m *mockPumpCollection) InsertPump(ctx context.Context, state models.PumpState) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, state)
	return nil
}

func (m *mockPumpCollection) FindPumps(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (db.PumpCursor, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return &mockPumpCursor{results: m.results}, nil
}

func (m *mockPumpCollection) FindPumpByID(ctx context.Context, pumpID int) (*models.PumpState, error) {
	for i := range m.results {
		if m.results[i].PumpID == pumpID {
			return &m.results[i], nil
		}
	}
	return nil, errors.New("pump not found")
}

func (m *mockPumpCollection) UpdatePumpReserve(ctx context.Context, pumpID int, reserveLitres float64) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if m.updated == nil {
		m.updated = make(map[int]float64)
	}
	m.updated[pumpID] = reserveLitres
	return nil
}

func (m *mockPumpCollection) DeletePump(ctx context.Context, pumpID int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedIDs = append(m.deletedIDs, pumpID)
	return nil
}

type mockPumpCursor struct {
	results []models.PumpState
}

func (m *mockPumpCursor) All(ctx context.Context, out interface{}) error {
	dst, ok := out.(*[]models.PumpState)
	if !ok {
		return errors.New("unexpected output type")
	}
	*dst = m.results
	return nil
}

func (m *mockPumpCursor) Close(ctx context.Context) error { return nil }

func TestPumpHandler_POST_Valid(t *testing.T) {
	coll := &mockPumpCollection{}
	handler := &PumpHandler{Collection: coll}

	state := models.NewPump(1, 1.55, 500.0).Snapshot()
	data, _ := json.Marshal(state)
	req := httptest.NewRequest(http.MethodPost, "/api/pumps", bytes.NewBuffer(data))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if len(coll.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(coll.inserted))
	}
	if coll.inserted[0].Status != "in_service" {
		t.Errorf("expected default status, got %q", coll.inserted[0].Status)
	}
}

func TestPumpHandler_POST_Validation(t *testing.T) {
	tests := []struct {
		name  string
		state models.PumpState
	}{
		{"zero pump id", models.PumpState{PumpID: 0, PricePerLitre: 1.55, ReserveLitres: 100}},
		{"zero price", models.PumpState{PumpID: 1, PricePerLitre: 0, ReserveLitres: 100}},
		{"negative reserve", models.PumpState{PumpID: 1, PricePerLitre: 1.55, ReserveLitres: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, _ := json.Marshal(tt.state)
			req := httptest.NewRequest(http.MethodPost, "/api/pumps", bytes.NewBuffer(data))
			w := httptest.NewRecorder()

			handler := &PumpHandler{Collection: &mockPumpCollection{}}
			handler.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestPumpHandler_GET_ReturnsPumps(t *testing.T) {
	coll := &mockPumpCollection{results: []models.PumpState{
		models.NewPump(1, 1.55, 500.0).Snapshot(),
		models.NewPump(2, 1.40, 50.0).Snapshot(),
	}}
	handler := &PumpHandler{Collection: coll}

	req := httptest.NewRequest(http.MethodGet, "/api/pumps", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var results []models.PumpState
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(results) != 2 || results[1].PumpID != 2 {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestPumpHandler_PUT_UpdatesReserve(t *testing.T) {
	coll := &mockPumpCollection{}
	handler := &PumpHandler{Collection: coll}

	body := []byte(`{"pump_id": 1, "reserve_litres": 460.0}`)
	req := httptest.NewRequest(http.MethodPut, "/api/pumps", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if coll.updated[1] != 460.0 {
		t.Errorf("expected reserve update to 460.00, got %v", coll.updated)
	}
}

func TestPumpHandler_PUT_UnknownPump(t *testing.T) {
	coll := &mockPumpCollection{updateErr: fmt.Errorf("pump 99: %w", db.ErrNotFound)}
	handler := &PumpHandler{Collection: coll}

	body := []byte(`{"pump_id": 99, "reserve_litres": 10.0}`)
	req := httptest.NewRequest(http.MethodPut, "/api/pumps", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestPumpHandler_PUT_DBError(t *testing.T) {
	// A storage failure is not a missing pump.
	coll := &mockPumpCollection{updateErr: errors.New("connection reset")}
	handler := &PumpHandler{Collection: coll}

	body := []byte(`{"pump_id": 1, "reserve_litres": 10.0}`)
	req := httptest.NewRequest(http.MethodPut, "/api/pumps", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestPumpHandler_DELETE(t *testing.T) {
	coll := &mockPumpCollection{}
	handler := &PumpHandler{Collection: coll}

	req := httptest.NewRequest(http.MethodDelete, "/api/pumps?pump_id=2", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if len(coll.deletedIDs) != 1 || coll.deletedIDs[0] != 2 {
		t.Errorf("unexpected deletes: %v", coll.deletedIDs)
	}
}

func TestPumpHandler_DELETE_UnknownPump(t *testing.T) {
	coll := &mockPumpCollection{deleteErr: fmt.Errorf("pump 99: %w", db.ErrNotFound)}
	handler := &PumpHandler{Collection: coll}

	req := httptest.NewRequest(http.MethodDelete, "/api/pumps?pump_id=99", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestPumpHandler_DELETE_DBError(t *testing.T) {
	coll := &mockPumpCollection{deleteErr: errors.New("connection reset")}
	handler := &PumpHandler{Collection: coll}

	req := httptest.NewRequest(http.MethodDelete, "/api/pumps?pump_id=1", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestPumpHandler_DELETE_BadID(t *testing.T) {
	handler := &PumpHandler{Collection: &mockPumpCollection{}}
	req := httptest.NewRequest(http.MethodDelete, "/api/pumps?pump_id=abc", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
