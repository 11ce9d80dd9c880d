// Package interfaces defines core abstractions for the tabib API
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"time"

	"github.com/BlueSkyGuardian/tabibapp/catalog/entities"
)

// DataQualityReport provides a summary of catalog data quality issues.
type DataQualityReport struct {
	TotalRecords        int
	NotCommercialized   int      // Records excluded from every search by the status gate
	MissingIndications  int      // Records the symptom matcher and age heuristics cannot inspect
	MissingPublicPrice  int      // Records the price ceiling and price bonus skip
	MissingComposition  int      // Records the composition matcher cannot inspect
	InvalidNames        []string // Commercial names that failed record validation
	PrescriptionOnly    int      // Tableau A records
	DistinctDistributor int
}

// CatalogStore defines the contract for the medicine catalog.
// The catalog is loaded once per process and is read-only afterwards;
// implementations must tolerate concurrent readers without locking.
type CatalogStore interface {
	// Load populates the catalog from the data source. It is idempotent:
	// after the first successful load subsequent calls are no-ops.
	// A read failure leaves the catalog empty and is not an error for
	// callers of Medicines.
	Load() error

	// Medicines returns the full record list, empty when nothing loaded.
	Medicines() []entities.Medicine

	// Count returns the number of loaded records.
	Count() int

	// LoadedAt returns when the catalog was populated, zero if never.
	LoadedAt() time.Time
}

// DataValidator defines the contract for data validation operations.
type DataValidator interface {
	// ValidateMedicine checks if a medicine record is well-formed.
	ValidateMedicine(m *entities.Medicine) error

	// ValidateInput validates user-supplied search strings.
	ValidateInput(input string) error

	// ReportDataQuality summarizes catalog issues for logging.
	ReportDataQuality(medicines []entities.Medicine) *DataQualityReport
}

// HealthChecker defines the contract for health check functionality.
type HealthChecker interface {
	// HealthCheck returns current system health status, response data
	// and the HTTP status code to serve it with.
	HealthCheck() (status string, data map[string]any, httpStatus int)
}
