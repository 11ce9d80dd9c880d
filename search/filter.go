package search

import (
	"strconv"
	"strings"

	"github.com/BlueSkyGuardian/tabibapp/catalog/entities"
)

// eligible applies the filter steps in order, short-circuiting on the
// first failure: status gate, keyword match, price ceiling, then the
// age/gender heuristics. A query with no keywords at all matches nothing.
func eligible(med *entities.Medicine, q Query, kw keywords) bool {
	// Only commercialized medicines are ever returned
	if !med.IsCommercialized() {
		return false
	}

	matches := false
	hasSearchCriteria := false

	composition := strings.ToLower(med.Composition)
	therapeutic := strings.ToLower(med.ClasseTherapeutique)
	indications := strings.ToLower(med.Indications)

	// Composition and therapeutic class form one OR group: any keyword of
	// either set matching either field counts.
	if len(kw.composition) > 0 || len(kw.therapeutic) > 0 {
		hasSearchCriteria = true
		matches = anyContains(composition, kw.composition) || anyContains(therapeutic, kw.therapeutic)
	}

	// Symptom/condition keywords match against the indications text and
	// combine with the previous group using OR.
	if len(kw.symptoms) > 0 {
		hasSearchCriteria = true
		matches = matches || anyContains(indications, kw.symptoms)
	}

	// Price ceiling rejects regardless of content match. A price that
	// cannot be parsed never excludes on its own.
	if q.MaxPrice != nil && med.PPV != "" {
		if price, ok := parsePrice(med.PPV); ok && price > *q.MaxPrice {
			return false
		}
	}

	if matches && (q.PatientAge != nil || q.PatientGender != "") {
		if !ageAppropriate(indications, q.PatientAge) {
			return false
		}
		// Gender is recorded for the model's pregnancy/breastfeeding
		// guidance downstream but never rejects a record on its own.
	}

	return hasSearchCriteria && matches
}

// ageAppropriate inspects the free-form indications prose for pediatric
// restrictions. This is a literal text heuristic against the source data,
// not a structured contraindication check.
func ageAppropriate(indications string, patientAge *int) bool {
	if patientAge == nil {
		return true
	}
	age := *patientAge

	if age >= 18 {
		return true
	}

	// Adult-only wording combined with an explicit exclusion cue
	if strings.Contains(indications, "adulte") &&
		!strings.Contains(indications, "enfant") &&
		!strings.Contains(indications, "adolescent") {
		if strings.Contains(indications, "contre-indiqué") ||
			strings.Contains(indications, "déconseillé") {
			return false
		}
	}

	// Explicit minimum-age phrases
	if strings.Contains(indications, "18 ans") && age < 18 {
		return false
	}
	if strings.Contains(indications, "12 ans") && age < 12 {
		return false
	}
	if strings.Contains(indications, "6 ans") && age < 6 {
		return false
	}

	return true
}

// parsePrice extracts a numeric value from a price string by stripping
// everything but digits and dots. The source data mixes currency suffixes
// and thousands separators into the field.
func parsePrice(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	price, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return price, true
}
