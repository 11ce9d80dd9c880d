// Package health provides health checking functionality for the tabib API.
package health

import (
	"math"
	"net/http"
	"time"

	"github.com/BlueSkyGuardian/tabibapp/interfaces"
)

// HealthCheckerImpl implements the interfaces.HealthChecker interface
type HealthCheckerImpl struct {
	store interfaces.CatalogStore
	model string
}

var _ interfaces.HealthChecker = (*HealthCheckerImpl)(nil)

// NewHealthChecker creates a new health checker with injected dependencies
func NewHealthChecker(store interfaces.CatalogStore, model string) interfaces.HealthChecker {
	return &HealthCheckerImpl{
		store: store,
		model: model,
	}
}

// HealthCheck returns HTTP-specific health data.
// Used by the /health HTTP endpoint.
//
// The catalog is loaded once at startup and never refreshed, so staleness
// thresholds do not apply; the only unhealthy condition is an empty catalog.
func (h *HealthCheckerImpl) HealthCheck() (status string, data map[string]any, httpStatus int) {
	count := h.store.Count()
	loadedAt := h.store.LoadedAt()

	if count == 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	} else {
		status = "healthy"
		httpStatus = http.StatusOK
	}

	data = map[string]any{
		"medicines": count,
		"model":     h.model,
	}
	if !loadedAt.IsZero() {
		data["loaded_at"] = loadedAt.Format(time.RFC3339)
		data["uptime_hours"] = math.Round(time.Since(loadedAt).Hours()*10) / 10
	}

	return status, data, httpStatus
}
