package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/BlueSkyGuardian/tabibapp/catalog/entities"
)

// Name and class lookups for the REST endpoints. URL queries are often
// typed without accents ("paracetamol"), so these fold diacritics before
// comparing. The relevance engine itself keeps plain lowercase matching.

// QuickSearchLimit caps direct name/composition lookups.
const QuickSearchLimit = 5

// ClassSearchLimit caps therapeutic-class lookups.
const ClassSearchLimit = 10

// foldTransformer removes diacritics: decompose, drop combining marks,
// recompose.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases text and strips diacritics for accent-insensitive lookup.
func Fold(text string) string {
	folded, _, err := transform.String(foldTransformer, text)
	if err != nil {
		// Fold is best effort: fall back to plain lowercasing
		return strings.ToLower(text)
	}
	return strings.ToLower(folded)
}

// QuickSearch matches the term against commercial name, composition and
// therapeutic class of every record, in catalog order.
func (e *Engine) QuickSearch(term string, limit int) []entities.Medicine {
	if limit <= 0 {
		limit = QuickSearchLimit
	}
	needle := Fold(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}

	var results []entities.Medicine
	for _, med := range e.store.Medicines() {
		if strings.Contains(Fold(med.NomCommercial), needle) ||
			strings.Contains(Fold(med.Composition), needle) ||
			strings.Contains(Fold(med.ClasseTherapeutique), needle) {
			results = append(results, med)
			if len(results) >= limit {
				break
			}
		}
	}
	return results
}

// ByName returns the first record whose commercial name matches exactly
// (accent- and case-insensitive), or nil.
func (e *Engine) ByName(name string) *entities.Medicine {
	needle := Fold(strings.TrimSpace(name))
	medicines := e.store.Medicines()
	for i := range medicines {
		if Fold(medicines[i].NomCommercial) == needle {
			return &medicines[i]
		}
	}
	return nil
}

// ByTherapeuticClass returns commercialized records whose therapeutic
// class contains the term.
func (e *Engine) ByTherapeuticClass(class string, limit int) []entities.Medicine {
	if limit <= 0 {
		limit = ClassSearchLimit
	}
	needle := Fold(strings.TrimSpace(class))
	if needle == "" {
		return nil
	}

	var results []entities.Medicine
	for _, med := range e.store.Medicines() {
		if med.IsCommercialized() && strings.Contains(Fold(med.ClasseTherapeutique), needle) {
			results = append(results, med)
			if len(results) >= limit {
				break
			}
		}
	}
	return results
}
