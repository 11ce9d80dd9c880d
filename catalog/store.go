// Package catalog provides the in-memory medicine catalog.
// The catalog is loaded once per process lifetime from a static JSON file
// and is read-only afterwards, so concurrent requests never need locking.
package catalog

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/BlueSkyGuardian/tabibapp/catalog/entities"
	"github.com/BlueSkyGuardian/tabibapp/interfaces"
	"github.com/BlueSkyGuardian/tabibapp/logging"
)

// Compile-time check to ensure Store implements CatalogStore
var _ interfaces.CatalogStore = (*Store)(nil)

// Store holds the medicine list behind atomic pointers. Population is
// memoized on success only: racing callers all observe the same immutable
// result, and a failed read leaves the catalog empty so a later Load can
// try the file again.
type Store struct {
	filePath  string
	medicines atomic.Value // []entities.Medicine
	loadedAt  atomic.Value // time.Time
	loadMu    sync.Mutex
	loaded    bool
}

// NewStore creates a new Store reading from filePath on first Load
func NewStore(filePath string) *Store {
	s := &Store{filePath: filePath}
	s.medicines.Store(make([]entities.Medicine, 0))
	s.loadedAt.Store(time.Time{})
	return s
}

// Load populates the catalog from the JSON file. Idempotent on success:
// the first successful call reads the file, later calls return
// immediately. A read failure is logged and leaves the catalog empty,
// which callers must treat as a valid (if unhelpful) state; the next
// Load reads the file again.
func (s *Store) Load() error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.loaded {
		return nil
	}

	start := time.Now()

	medicines, err := loadMedicinesFile(s.filePath)
	if err != nil {
		logging.Error("Failed to load medicines catalog", "file", s.filePath, "error", err)
		return err
	}

	s.medicines.Store(medicines)
	s.loadedAt.Store(time.Now())
	s.loaded = true

	logging.Info("Medicines catalog loaded",
		"count", len(medicines),
		"file", s.filePath,
		"duration", time.Since(start).String())
	return nil
}

// Medicines returns the loaded medicine list, empty when nothing loaded
func (s *Store) Medicines() []entities.Medicine {
	if v := s.medicines.Load(); v != nil {
		if medicines, ok := v.([]entities.Medicine); ok {
			return medicines
		}
	}

	logging.Warn("Medicines list is empty or invalid")
	return []entities.Medicine{}
}

// Count returns the number of loaded records
func (s *Store) Count() int {
	return len(s.Medicines())
}

// LoadedAt returns the timestamp of the catalog population
func (s *Store) LoadedAt() time.Time {
	if v := s.loadedAt.Load(); v != nil {
		if loadedAt, ok := v.(time.Time); ok {
			return loadedAt
		}
	}

	logging.Warn("Could not get the catalog loaded time")
	return time.Time{}
}
