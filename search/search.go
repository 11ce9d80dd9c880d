package search

import (
	"sort"
	"time"

	"github.com/BlueSkyGuardian/tabibapp/catalog/entities"
	"github.com/BlueSkyGuardian/tabibapp/interfaces"
	"github.com/BlueSkyGuardian/tabibapp/logging"
)

// DefaultLimit caps the result list when the query does not set one.
// High enough that all packaging variants of a matching drug surface.
const DefaultLimit = 20

// Query carries one search request. Nil pointer fields mean "not supplied";
// an empty gender string means the same.
type Query struct {
	Symptoms         string
	Condition        string
	Composition      string
	TherapeuticClass string
	PatientAge       *int
	PatientGender    string
	MaxPrice         *float64
	Limit            int
}

// ScoredMedicine is a catalog record with its relevance score attached.
type ScoredMedicine struct {
	entities.Medicine
	Score int
}

// Engine runs queries against an injected catalog store.
type Engine struct {
	store interfaces.CatalogStore
}

// NewEngine creates a search engine over the given catalog store
func NewEngine(store interfaces.CatalogStore) *Engine {
	return &Engine{store: store}
}

// Search filters, scores and ranks the catalog against the query.
// Results are sorted by descending relevance; ties keep catalog order so
// identical inputs always produce identical output. Packaging variants of
// the same drug are independent records and are never collapsed.
func (e *Engine) Search(q Query) []ScoredMedicine {
	start := time.Now()

	kw := newKeywords(q)
	medicines := e.store.Medicines()

	results := make([]ScoredMedicine, 0, DefaultLimit)
	for i := range medicines {
		if !eligible(&medicines[i], q, kw) {
			continue
		}
		results = append(results, ScoredMedicine{
			Medicine: medicines[i],
			Score:    score(&medicines[i], kw),
		})
	}

	// Stable: records with equal scores keep their catalog order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}

	logging.Debug("Medicine search completed",
		"composition_keywords", len(kw.composition),
		"therapeutic_keywords", len(kw.therapeutic),
		"symptom_keywords", len(kw.symptoms),
		"results", len(results),
		"duration", time.Since(start).String())

	return results
}
