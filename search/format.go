package search

import (
	"fmt"
	"strings"

	"github.com/BlueSkyGuardian/tabibapp/catalog/entities"
)

// provenanceMarker prefixes the website footer that the source scraper
// leaves at the end of the indications text.
const provenanceMarker = "Ajouté le:"

// maxIndicationsRunes caps the indications excerpt in the model-facing block.
const maxIndicationsRunes = 300

// blockSeparator joins the per-medicine blocks in the tool output.
const blockSeparator = "\n\n---\n\n"

// NoMatchNotice is returned to the model when a search yields no records.
const NoMatchNotice = "لم يتم العثور على أدوية مطابقة في قاعدة البيانات. يرجى تجربة معايير بحث مختلفة أو استشارة الصيدلي."

// ErrorNotice replaces the tool output when the search itself fails, so
// the conversation continues instead of aborting.
const ErrorNotice = "حدث خطأ أثناء البحث في قاعدة البيانات. يرجى المحاولة مرة أخرى."

// CleanIndications strips the provenance footer from the indications text.
func CleanIndications(indications string) string {
	if idx := strings.Index(indications, provenanceMarker); idx != -1 {
		return strings.TrimSpace(indications[:idx])
	}
	return indications
}

// FormatMedicine renders one record as the fixed-format text block the
// model receives as tool output. Presentation and hospital price fall back
// to explicit placeholders and tableau A gets the prescription note.
func FormatMedicine(med *entities.Medicine) string {
	presentation := med.Presentation
	if presentation == "" {
		presentation = "Non spécifié"
	}

	hospitalPrice := med.PrixHospitalier
	if hospitalPrice == "" {
		hospitalPrice = "N/A"
	}

	tableau := med.Tableau
	if med.RequiresPrescription() {
		tableau += " (nécessite ordonnance)"
	}

	indications := CleanIndications(med.Indications)
	runes := []rune(indications)
	suffix := ""
	if len(runes) > maxIndicationsRunes {
		runes = runes[:maxIndicationsRunes]
		suffix = "..."
	}

	return fmt.Sprintf(`**%s**
- Composition: %s
- Classe thérapeutique: %s
- Dosage: %s
- Présentation: %s
- Prix public: %s
- Prix hospitalier: %s
- Tableau: %s
- Indications: %s%s`,
		med.NomCommercial,
		med.Composition,
		med.ClasseTherapeutique,
		med.Dosage,
		presentation,
		med.PPV,
		hospitalPrice,
		tableau,
		string(runes), suffix)
}

// FormatResults serializes ranked results for the model, substituting the
// fixed no-match notice when nothing survived the filter.
func FormatResults(results []ScoredMedicine) string {
	if len(results) == 0 {
		return NoMatchNotice
	}

	blocks := make([]string, len(results))
	for i := range results {
		blocks[i] = FormatMedicine(&results[i].Medicine)
	}
	return strings.Join(blocks, blockSeparator)
}
