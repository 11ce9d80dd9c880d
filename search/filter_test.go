package search

import (
	"testing"

	"github.com/BlueSkyGuardian/tabibapp/catalog/entities"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func commercializedMedicine() entities.Medicine {
	return entities.Medicine{
		NomCommercial:       "DOLIPRANE 500",
		Composition:         "Paracétamol",
		ClasseTherapeutique: "Analgésique et antipyrétique",
		Indications:         "Traitement symptomatique de la fièvre et des douleurs",
		PPV:                 "15.50 dhs",
		Statut:              entities.StatutCommercialise,
	}
}

func checkEligible(t *testing.T, med entities.Medicine, q Query, expected bool) {
	t.Helper()
	if got := eligible(&med, q, newKeywords(q)); got != expected {
		t.Errorf("eligible = %v, expected %v (query %+v)", got, expected, q)
	}
}

func TestEligibleStatusGate(t *testing.T) {
	med := commercializedMedicine()
	q := Query{Composition: "paracétamol"}
	checkEligible(t, med, q, true)

	med.Statut = "Retiré du marché"
	checkEligible(t, med, q, false)

	// Case matters for the status field, the data is consistent about it
	med.Statut = "commercialisé"
	checkEligible(t, med, q, false)
}

func TestEligibleNoCriteriaMatchesNothing(t *testing.T) {
	// A query with no keyword fields never matches, even with age and
	// price constraints supplied
	checkEligible(t, commercializedMedicine(), Query{}, false)
	checkEligible(t, commercializedMedicine(), Query{PatientAge: intPtr(30), MaxPrice: floatPtr(100)}, false)
}

func TestEligibleORSemantics(t *testing.T) {
	med := commercializedMedicine()

	testCases := []struct {
		name     string
		query    Query
		expected bool
	}{
		{"Composition match alone", Query{Composition: "paracétamol"}, true},
		{"Therapeutic match alone", Query{TherapeuticClass: "analgésique"}, true},
		{"Symptom match alone", Query{Symptoms: "fièvre"}, true},
		{"Condition used when symptoms empty", Query{Condition: "douleurs"}, true},
		{"Composition miss rescued by symptom", Query{Composition: "ibuprofène", Symptoms: "fièvre"}, true},
		{"Symptom miss rescued by composition", Query{Composition: "paracétamol", Symptoms: "vertige"}, true},
		{"Composition keyword never reads the therapeutic field", Query{Composition: "antipyrétique"}, false},
		{"All groups miss", Query{Composition: "ibuprofène", Symptoms: "vertige"}, false},
		{"Short tokens leave no criteria", Query{Composition: "il"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checkEligible(t, med, tc.query, tc.expected)
		})
	}
}

func TestEligiblePriceCeiling(t *testing.T) {
	med := commercializedMedicine()
	q := Query{Composition: "paracétamol", MaxPrice: floatPtr(10)}

	// 15.50 > 10: excluded even though the composition matches
	checkEligible(t, med, q, false)

	q.MaxPrice = floatPtr(20)
	checkEligible(t, med, q, true)

	// Unparsable price never excludes
	med.PPV = "prix libre"
	q.MaxPrice = floatPtr(10)
	checkEligible(t, med, q, true)

	// Empty price field skips the ceiling entirely
	med.PPV = ""
	checkEligible(t, med, q, true)
}

func TestEligibleAgeHeuristics(t *testing.T) {
	testCases := []struct {
		name        string
		indications string
		age         int
		expected    bool
	}{
		{"Adult fine with adult-only wording", "Réservé à l'adulte, contre-indiqué chez certains patients", 30, true},
		{"Child blocked by adult-only contraindication", "Réservé à l'adulte, contre-indiqué en dessous", 10, false},
		{"Child allowed when enfant mentioned", "Adulte et enfant, contre-indiqué en cas d'allergie", 10, true},
		{"Child allowed without exclusion cue", "Réservé à l'adulte", 10, true},
		{"Under 18 threshold", "À partir de 18 ans", 17, false},
		{"Exactly 18 passes threshold", "À partir de 18 ans", 18, true},
		{"Under 12 threshold", "Enfant à partir de 12 ans", 10, false},
		{"Over 12 passes threshold", "Enfant à partir de 12 ans", 14, true},
		{"Under 6 threshold", "Enfant à partir de 6 ans", 5, false},
		{"Over 6 passes threshold", "Enfant à partir de 6 ans", 7, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			med := commercializedMedicine()
			med.Indications = "fièvre. " + tc.indications
			q := Query{Symptoms: "fièvre", PatientAge: intPtr(tc.age)}
			checkEligible(t, med, q, tc.expected)
		})
	}
}

func TestEligibleAgeSkippedWithoutPatientInfo(t *testing.T) {
	med := commercializedMedicine()
	med.Indications = "fièvre, à partir de 18 ans"

	// No age or gender supplied: the heuristics never run
	checkEligible(t, med, Query{Symptoms: "fièvre"}, true)
}

func TestEligibleGenderAloneTriggersAgeCheckOnly(t *testing.T) {
	med := commercializedMedicine()
	med.Indications = "fièvre, à partir de 18 ans"

	// Gender without age runs the appropriateness check, but with no age
	// the threshold phrases cannot reject
	checkEligible(t, med, Query{Symptoms: "fièvre", PatientGender: "femme"}, true)
}

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"15.50 dhs", 15.50, true},
		{"120", 120, true},
		{"1 250.00 DH", 1250.00, true},
		{"prix libre", 0, false},
		{"", 0, false},
	}

	for _, tc := range testCases {
		got, ok := parsePrice(tc.input)
		if ok != tc.ok || got != tc.expected {
			t.Errorf("parsePrice(%q) = (%v, %v), expected (%v, %v)", tc.input, got, ok, tc.expected, tc.ok)
		}
	}
}
