package search

import (
	"testing"

	"github.com/BlueSkyGuardian/tabibapp/catalog/entities"
)

func TestScoreWeights(t *testing.T) {
	med := entities.Medicine{
		Composition:         "Paracétamol",
		ClasseTherapeutique: "Analgésique et antipyrétique",
		Indications:         "Fièvre et douleurs",
	}

	testCases := []struct {
		name     string
		query    Query
		expected int
	}{
		{"Single therapeutic match", Query{TherapeuticClass: "analgésique"}, 10},
		{"Two therapeutic matches", Query{TherapeuticClass: "analgésique antipyrétique"}, 20},
		{"Single composition match", Query{Composition: "paracétamol"}, 8},
		{"Single symptom match", Query{Symptoms: "fièvre"}, 5},
		{"Two symptom matches", Query{Symptoms: "fièvre douleurs"}, 10},
		{"Mixed groups add up", Query{Composition: "paracétamol", TherapeuticClass: "analgésique", Symptoms: "fièvre"}, 23},
		{"Missing keyword contributes nothing", Query{Composition: "ibuprofène"}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := score(&med, newKeywords(tc.query)); got != tc.expected {
				t.Errorf("score = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestScorePriceBonuses(t *testing.T) {
	base := entities.Medicine{
		ClasseTherapeutique: "Antipyrétique",
	}
	kw := newKeywords(Query{TherapeuticClass: "antipyrétique"})

	med := base
	if got := score(&med, kw); got != 10 {
		t.Fatalf("expected base score 10, got %d", got)
	}

	med = base
	med.PrixHospitalier = "8.00 dhs"
	if got := score(&med, kw); got != 12 {
		t.Errorf("expected hospital price bonus, got %d", got)
	}

	med = base
	med.PPV = "15.50 dhs"
	if got := score(&med, kw); got != 11 {
		t.Errorf("expected low price bonus under 50 dhs, got %d", got)
	}

	med = base
	med.PPV = "120.00 dhs"
	if got := score(&med, kw); got != 10 {
		t.Errorf("expected no bonus above 50 dhs, got %d", got)
	}

	// Unparsable price yields no bonus
	med = base
	med.PPV = "prix libre"
	if got := score(&med, kw); got != 10 {
		t.Errorf("expected no bonus for unparsable price, got %d", got)
	}
}

func TestScoreMonotonicity(t *testing.T) {
	med := entities.Medicine{
		Composition:         "Paracétamol",
		ClasseTherapeutique: "Analgésique",
		Indications:         "Fièvre",
	}

	narrow := score(&med, newKeywords(Query{Composition: "paracétamol"}))
	wide := score(&med, newKeywords(Query{Composition: "paracétamol", Symptoms: "fièvre"}))

	if wide <= narrow {
		t.Errorf("adding a matching keyword must raise the score: %d then %d", narrow, wide)
	}
}
