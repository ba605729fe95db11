package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/avelichko/mini-erp-cafe/internal/server/health/dto"
	"github.com/avelichko/mini-erp-cafe/pkg/deps"
	"github.com/avelichko/mini-erp-cafe/pkg/logger"
)

func TestHealthReturnsOKWithTimestamp(t *testing.T) {
	app := fiber.New()
	log, _ := logger.NewLoggerFromEnv("test")

	NewHandler(deps.App{Fiber: app, Logger: log})

	before := time.Now().UTC()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var hr dto.HealthResponse
	if err := json.Unmarshal(body, &hr); err != nil {
		t.Fatalf("failed to decode body %q: %v", body, err)
	}

	if hr.Status != "ok" {
		t.Errorf("expected status ok, got %q", hr.Status)
	}
	if hr.Timestamp.Before(before.Truncate(time.Second)) {
		t.Errorf("timestamp %v is earlier than request time %v", hr.Timestamp, before)
	}
	if hr.Timestamp.After(time.Now().UTC().Add(time.Second)) {
		t.Errorf("timestamp %v is in the future", hr.Timestamp)
	}
}
