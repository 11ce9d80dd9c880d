package health

import (
	"net/http"
	"testing"
	"time"

	"github.com/BlueSkyGuardian/tabibapp/catalog/entities"
)

// mockCatalogStore for testing
type mockCatalogStore struct {
	medicines []entities.Medicine
	loadedAt  time.Time
}

func (m *mockCatalogStore) Load() error                    { return nil }
func (m *mockCatalogStore) Medicines() []entities.Medicine { return m.medicines }
func (m *mockCatalogStore) Count() int                     { return len(m.medicines) }
func (m *mockCatalogStore) LoadedAt() time.Time            { return m.loadedAt }

func TestHealthCheckHealthy(t *testing.T) {
	store := &mockCatalogStore{
		medicines: []entities.Medicine{{NomCommercial: "DOLIPRANE"}},
		loadedAt:  time.Now().Add(-2 * time.Hour),
	}
	checker := NewHealthChecker(store, "gpt-4o")

	status, data, httpStatus := checker.HealthCheck()

	if status != "healthy" {
		t.Errorf("expected healthy, got %s", status)
	}
	if httpStatus != http.StatusOK {
		t.Errorf("expected 200, got %d", httpStatus)
	}
	if data["medicines"] != 1 {
		t.Errorf("expected 1 medicine in data, got %v", data["medicines"])
	}
	if data["model"] != "gpt-4o" {
		t.Errorf("expected model in data, got %v", data["model"])
	}
	if _, ok := data["loaded_at"]; !ok {
		t.Error("expected loaded_at in data")
	}
}

func TestHealthCheckEmptyCatalog(t *testing.T) {
	checker := NewHealthChecker(&mockCatalogStore{}, "gpt-4o")

	status, data, httpStatus := checker.HealthCheck()

	if status != "unhealthy" {
		t.Errorf("expected unhealthy, got %s", status)
	}
	if httpStatus != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", httpStatus)
	}
	if _, ok := data["loaded_at"]; ok {
		t.Error("loaded_at must be absent when the catalog never loaded")
	}
}
