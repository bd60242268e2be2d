package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestHealthReportsHistoryAvailability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		app         *App
		wantHistory bool
	}{
		{"with store", NewApp(zerolog.Nop(), nil, nil, &stubHistory{}), true},
		{"without store", NewApp(zerolog.Nop(), nil, nil, nil), false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("GET", "/v1/healthz", nil)
			rr := httptest.NewRecorder()
			tt.app.Health(rr, req)

			if rr.Code != 200 {
				t.Fatalf("status = %d, want 200", rr.Code)
			}
			var payload struct {
				Status  string `json:"status"`
				History bool   `json:"history"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if payload.Status != "ok" || payload.History != tt.wantHistory {
				t.Errorf("payload = %+v, want ok/%v", payload, tt.wantHistory)
			}
		})
	}
}
