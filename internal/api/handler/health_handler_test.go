package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func getReadiness(t *testing.T, h *HealthDependenciesHandler) (*httptest.ResponseRecorder, readinessResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := h.Readiness(c); err != nil {
		t.Fatalf("Readiness returned error: %v", err)
	}
	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec, resp
}

func TestReadiness_AllDependenciesHealthy(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	h := newHealthDependenciesHandler(healthy, healthy)

	rec, resp := getReadiness(t, h)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp.Status != "ok" {
		t.Fatalf("expected status ok, got %q", resp.Status)
	}
	for _, name := range []string{"mongodb", "redis"} {
		if resp.Dependencies[name].Status != "ok" {
			t.Fatalf("dependency %s not ok: %+v", name, resp.Dependencies[name])
		}
	}
}

func TestReadiness_DegradedWhenDependencyFails(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	failing := func(context.Context) error { return errors.New("connection refused") }
	h := newHealthDependenciesHandler(failing, healthy)

	rec, resp := getReadiness(t, h)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if resp.Status != "degraded" {
		t.Fatalf("expected status degraded, got %q", resp.Status)
	}
	mongoDep := resp.Dependencies["mongodb"]
	if mongoDep.Status != "unhealthy" || mongoDep.Error != "connection refused" {
		t.Fatalf("failing dependency not reported: %+v", mongoDep)
	}
	if resp.Dependencies["redis"].Status != "ok" {
		t.Fatalf("healthy dependency wrongly degraded: %+v", resp.Dependencies["redis"])
	}
}
