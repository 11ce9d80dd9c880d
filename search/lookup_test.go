package search

import (
	"testing"

	"github.com/BlueSkyGuardian/tabibapp/catalog/entities"
)

func TestFold(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Paracétamol", "paracetamol"},
		{"FIÈVRE", "fievre"},
		{"déjà-vu", "deja-vu"},
		{"plain", "plain"},
	}

	for _, tc := range testCases {
		if got := Fold(tc.input); got != tc.expected {
			t.Errorf("Fold(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestQuickSearchAccentInsensitive(t *testing.T) {
	med := commercializedMedicine()
	engine := testEngine(med)

	// URL queries come in without accents
	results := engine.QuickSearch("paracetamol", 0)
	if len(results) != 1 {
		t.Fatalf("expected 1 result for unaccented query, got %d", len(results))
	}
	if results[0].NomCommercial != med.NomCommercial {
		t.Errorf("unexpected result %s", results[0].NomCommercial)
	}
}

func TestQuickSearchLimit(t *testing.T) {
	var medicines []entities.Medicine
	for i := 0; i < 10; i++ {
		medicines = append(medicines, commercializedMedicine())
	}
	engine := testEngine(medicines...)

	if got := len(engine.QuickSearch("doliprane", 0)); got != QuickSearchLimit {
		t.Errorf("expected default limit %d, got %d", QuickSearchLimit, got)
	}
	if got := len(engine.QuickSearch("doliprane", 2)); got != 2 {
		t.Errorf("expected explicit limit 2, got %d", got)
	}
}

func TestQuickSearchEmptyTerm(t *testing.T) {
	engine := testEngine(commercializedMedicine())
	if got := engine.QuickSearch("   ", 5); got != nil {
		t.Errorf("expected nil for blank term, got %v", got)
	}
}

func TestByName(t *testing.T) {
	med := commercializedMedicine()
	engine := testEngine(med)

	if got := engine.ByName("doliprane 500"); got == nil {
		t.Fatal("expected case-insensitive exact match")
	}
	if got := engine.ByName("DOLIPRANE"); got != nil {
		t.Error("partial name must not match")
	}
	if got := engine.ByName("inexistant"); got != nil {
		t.Error("expected nil for unknown name")
	}
}

func TestByTherapeuticClass(t *testing.T) {
	commercialized := commercializedMedicine()

	withdrawn := commercializedMedicine()
	withdrawn.NomCommercial = "WITHDRAWN"
	withdrawn.Statut = "Retiré du marché"

	engine := testEngine(commercialized, withdrawn)

	results := engine.ByTherapeuticClass("analgesique", 0)
	if len(results) != 1 {
		t.Fatalf("expected only the commercialized record, got %d", len(results))
	}
	if results[0].NomCommercial == "WITHDRAWN" {
		t.Error("withdrawn record must not appear")
	}
}
