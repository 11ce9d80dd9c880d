// Package scheduler coordinates the catalog load and recurring data quality
// monitoring for the tabib API.
package scheduler

import (
	"fmt"
	"time"

	"github.com/BlueSkyGuardian/tabibapp/interfaces"
	"github.com/BlueSkyGuardian/tabibapp/logging"
	"github.com/BlueSkyGuardian/tabibapp/validation"
	"github.com/go-co-op/gocron"
)

// Scheduler handles the initial catalog load and health monitoring.
// The catalog file is static, so the recurring jobs only observe and
// report; nothing is ever reloaded.
type Scheduler struct {
	store     interfaces.CatalogStore
	validator interfaces.DataValidator
	scheduler *gocron.Scheduler
}

// NewScheduler creates a new scheduler instance with injected dependencies
func NewScheduler(store interfaces.CatalogStore) *Scheduler {
	return &Scheduler{
		store:     store,
		validator: validation.NewDataValidator(),
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start loads the catalog and schedules the monitoring jobs. A failed
// catalog load is not fatal: the service comes up with an empty catalog
// and the watchdog plus /health report the degraded state.
func (s *Scheduler) Start() error {
	start := time.Now()
	if err := s.store.Load(); err != nil {
		logging.Error("Failed to load medicine catalog, starting with an empty catalog", "error", err)
	} else {
		logging.Info("Medicine catalog loaded",
			"duration", time.Since(start).String(),
			"medicine_count", s.store.Count(),
		)
	}

	// Daily data quality report at 06:00
	_, err := s.scheduler.Every(1).Days().At("06:00").Do(s.reportDataQuality)
	if err != nil {
		logging.Error("Failed to schedule data quality report", "error", err)
		return fmt.Errorf("failed to schedule data quality report: %w", err)
	}

	s.scheduler.StartAsync()

	s.startHealthMonitoring()

	// First report right away so an empty or degraded catalog shows up in
	// the logs at startup, not tomorrow morning
	s.reportDataQuality()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// reportDataQuality logs a summary of catalog issues that silently shrink
// search results.
func (s *Scheduler) reportDataQuality() {
	report := s.validator.ReportDataQuality(s.store.Medicines())

	logging.Info("Catalog data quality report",
		"total_records", report.TotalRecords,
		"not_commercialized", report.NotCommercialized,
		"missing_indications", report.MissingIndications,
		"missing_public_price", report.MissingPublicPrice,
		"missing_composition", report.MissingComposition,
		"prescription_only", report.PrescriptionOnly,
		"distinct_distributors", report.DistinctDistributor,
	)

	if len(report.InvalidNames) > 0 {
		logging.Warn("Invalid catalog records detected",
			"count", len(report.InvalidNames),
			"names", report.InvalidNames,
		)
	}
}

// startHealthMonitoring watches for an empty catalog, which makes every
// consultation search come back empty.
func (s *Scheduler) startHealthMonitoring() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if s.store.Count() == 0 {
				logging.Warn("Medicine catalog is empty, searches will return no results")
			}
		}
	}()
}
