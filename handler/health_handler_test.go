package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name         string
		ping         func(context.Context) error
		expectedCode int
		status       string
	}{
		{"Database up", func(context.Context) error { return nil }, http.StatusOK, "healthy"},
		{"Database down", func(context.Context) error { return errors.New("no reachable servers") }, http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.ping, "test")
			r := gin.New()
			r.GET("/health/live", h.Liveness)
			r.GET("/health/ready", h.Readiness)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("liveness: expected 200, got %d", w.Code)
			}

			w = httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
			if w.Code != tt.expectedCode {
				t.Fatalf("readiness: expected %d, got %d", tt.expectedCode, w.Code)
			}
			var resp HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("bad payload: %v", err)
			}
			if resp.Status != tt.status || resp.Checks["database"] == "" {
				t.Errorf("unexpected response %+v", resp)
			}
		})
	}
}
