package search

import (
	"fmt"
	"testing"
	"time"

	"github.com/BlueSkyGuardian/tabibapp/catalog/entities"
)

// mockCatalogStore implements interfaces.CatalogStore for engine tests.
type mockCatalogStore struct {
	medicines []entities.Medicine
}

func (m *mockCatalogStore) Load() error                    { return nil }
func (m *mockCatalogStore) Medicines() []entities.Medicine { return m.medicines }
func (m *mockCatalogStore) Count() int                     { return len(m.medicines) }
func (m *mockCatalogStore) LoadedAt() time.Time            { return time.Now() }

func testEngine(medicines ...entities.Medicine) *Engine {
	return NewEngine(&mockCatalogStore{medicines: medicines})
}

func TestSearchRanksByScore(t *testing.T) {
	weak := commercializedMedicine()
	weak.NomCommercial = "WEAK"
	weak.ClasseTherapeutique = "Antitussif"
	weak.Indications = "Traitement de la fièvre"
	weak.PPV = "120.00 dhs"

	strong := commercializedMedicine()
	strong.NomCommercial = "STRONG"
	strong.ClasseTherapeutique = "Antipyrétique"
	strong.Indications = "Traitement de la fièvre"

	// Catalog order has the weak match first, ranking must flip it
	results := testEngine(weak, strong).Search(Query{
		TherapeuticClass: "antipyrétique",
		Symptoms:         "fièvre",
	})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].NomCommercial != "STRONG" {
		t.Errorf("expected STRONG ranked first, got %s", results[0].NomCommercial)
	}
	if results[0].Score <= results[1].Score {
		t.Errorf("expected descending scores, got %d then %d", results[0].Score, results[1].Score)
	}
}

func TestSearchStableTies(t *testing.T) {
	var medicines []entities.Medicine
	for i := 0; i < 5; i++ {
		med := commercializedMedicine()
		med.NomCommercial = fmt.Sprintf("MED-%d", i)
		medicines = append(medicines, med)
	}

	// All records score identically: catalog order must be preserved
	results := testEngine(medicines...).Search(Query{Composition: "paracétamol"})
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	for i, r := range results {
		expected := fmt.Sprintf("MED-%d", i)
		if r.NomCommercial != expected {
			t.Errorf("position %d: expected %s, got %s", i, expected, r.NomCommercial)
		}
	}
}

func TestSearchDefaultLimit(t *testing.T) {
	var medicines []entities.Medicine
	for i := 0; i < 30; i++ {
		med := commercializedMedicine()
		med.NomCommercial = fmt.Sprintf("MED-%d", i)
		medicines = append(medicines, med)
	}

	results := testEngine(medicines...).Search(Query{Composition: "paracétamol"})
	if len(results) != DefaultLimit {
		t.Errorf("expected default limit of %d, got %d", DefaultLimit, len(results))
	}

	results = testEngine(medicines...).Search(Query{Composition: "paracétamol", Limit: 3})
	if len(results) != 3 {
		t.Errorf("expected explicit limit of 3, got %d", len(results))
	}
}

func TestSearchKeepsPackagingVariants(t *testing.T) {
	tablet := commercializedMedicine()
	tablet.Presentation = "Boîte de 20 comprimés"

	syrup := commercializedMedicine()
	syrup.Presentation = "Flacon de 120 ml"

	results := testEngine(tablet, syrup).Search(Query{Composition: "paracétamol"})
	if len(results) != 2 {
		t.Errorf("packaging variants must stay independent records, got %d results", len(results))
	}
}

func TestSearchEmptyCatalog(t *testing.T) {
	results := testEngine().Search(Query{Composition: "paracétamol"})
	if len(results) != 0 {
		t.Errorf("expected no results from empty catalog, got %d", len(results))
	}
}

func TestSearchDeterministic(t *testing.T) {
	var medicines []entities.Medicine
	for i := 0; i < 10; i++ {
		med := commercializedMedicine()
		med.NomCommercial = fmt.Sprintf("MED-%d", i%3)
		medicines = append(medicines, med)
	}
	engine := testEngine(medicines...)
	q := Query{Composition: "paracétamol", Symptoms: "fièvre"}

	first := engine.Search(q)
	for run := 0; run < 3; run++ {
		again := engine.Search(q)
		if len(again) != len(first) {
			t.Fatalf("result count changed between runs: %d vs %d", len(first), len(again))
		}
		for i := range first {
			if first[i].NomCommercial != again[i].NomCommercial || first[i].Score != again[i].Score {
				t.Fatalf("run %d diverged at position %d", run, i)
			}
		}
	}
}
