// Package validation provides input and catalog data validation for the tabib API.
package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/BlueSkyGuardian/tabibapp/catalog/entities"
	"github.com/BlueSkyGuardian/tabibapp/interfaces"
)

// Dangerous patterns as strings (strings.Contains is much faster than
// regex for plain substring checks).
var dangerousPatterns = []string{
	"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
	"onclick=", "onmouseover=", "onfocus=", "onblur=", "onchange=", "onsubmit=",
	"eval(", "expression(", "url(", "import ", "@import", "binding(", "behavior(",
	// SQL injection patterns
	"' or ", "\" or ", "union select", "drop table", "delete from", "insert into",
	"update set", "--", "/*", "*/", "xp_", "sp_", "exec(", "execute(",
	// Command injection patterns
	"; ", "| ", "& ", "`", "$(", "${",
	// Path traversal patterns
	"../", "..\\", "%2e%2e", "file://",
	// NoSQL injection patterns
	"{$ne:", "{$gt:", "{$where:", "{$or:", "{$regex:", "{$expr:",
}

// DataValidatorImpl implements the interfaces.DataValidator interface
type DataValidatorImpl struct{}

var _ interfaces.DataValidator = (*DataValidatorImpl)(nil)

// NewDataValidator creates a new data validator
func NewDataValidator() interfaces.DataValidator {
	return &DataValidatorImpl{}
}

// ValidateMedicine checks if a medicine record is well-formed.
func (v *DataValidatorImpl) ValidateMedicine(m *entities.Medicine) error {
	if m == nil {
		return fmt.Errorf("medicine is nil")
	}

	if strings.TrimSpace(m.NomCommercial) == "" {
		return fmt.Errorf("empty commercial name")
	}

	if len(m.NomCommercial) > 200 {
		return fmt.Errorf("commercial name too long for %q: %d characters",
			m.NomCommercial[:40], len(m.NomCommercial))
	}

	if len(m.ClasseTherapeutique) > 200 {
		return fmt.Errorf("therapeutic class too long for %s: %d characters",
			m.NomCommercial, len(m.ClasseTherapeutique))
	}

	if len(m.Tableau) > 20 {
		return fmt.Errorf("tableau too long for %s: %d characters", m.NomCommercial, len(m.Tableau))
	}

	if len(m.Statut) > 50 {
		return fmt.Errorf("statut too long for %s: %d characters", m.NomCommercial, len(m.Statut))
	}

	return nil
}

// ReportDataQuality summarizes catalog issues so the scheduler can log them.
// Missing fields are counted per the search feature that skips them, which
// makes the report directly answer "why did this query return nothing".
func (v *DataValidatorImpl) ReportDataQuality(medicines []entities.Medicine) *interfaces.DataQualityReport {
	report := &interfaces.DataQualityReport{
		TotalRecords: len(medicines),
		InvalidNames: []string{},
	}

	distributors := make(map[string]bool)
	for i := range medicines {
		med := &medicines[i]

		if !med.IsCommercialized() {
			report.NotCommercialized++
		}
		if strings.TrimSpace(med.Indications) == "" {
			report.MissingIndications++
		}
		if strings.TrimSpace(med.PPV) == "" {
			report.MissingPublicPrice++
		}
		if strings.TrimSpace(med.Composition) == "" {
			report.MissingComposition++
		}
		if med.RequiresPrescription() {
			report.PrescriptionOnly++
		}
		if med.Distributeur != "" {
			distributors[med.Distributeur] = true
		}

		// Store first 10 invalid names only, the count matters more
		if err := v.ValidateMedicine(med); err != nil && len(report.InvalidNames) < 10 {
			report.InvalidNames = append(report.InvalidNames, med.NomCommercial)
		}
	}
	report.DistinctDistributor = len(distributors)

	return report
}

// ValidateInput validates user input strings for the lookup endpoints.
func (v *DataValidatorImpl) ValidateInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("input cannot be empty")
	}

	if len(input) < 3 {
		return fmt.Errorf("input too short: minimum 3 characters")
	}

	if len(input) > 100 {
		return fmt.Errorf("input too long: maximum 100 characters")
	}

	// Word count validation to prevent DoS attacks with many short words
	words := strings.Fields(input)
	if len(words) > 8 {
		return fmt.Errorf("search query too complex: maximum 8 words allowed")
	}

	// Check for potentially dangerous patterns using string matching
	lowerInput := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowerInput, pattern) {
			return fmt.Errorf("input contains potentially dangerous content")
		}
	}

	// Allow letters (including accented ones, the catalog is French), digits,
	// spaces and safe punctuation. Rune-based check instead of a regex so
	// composed accents outside Latin-1 still pass.
	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '-', '.', '+', '\'', '%':
			continue
		}
		return fmt.Errorf("input contains invalid characters. Only letters, numbers, spaces, hyphens, apostrophes, periods, plus and percent signs are allowed")
	}

	// Additional check for repeated characters (potential DoS)
	if hasExcessiveRepetition(input) {
		return fmt.Errorf("input contains excessive character repetition")
	}

	return nil
}

// hasExcessiveRepetition checks for the same byte repeated more than 10
// times consecutively.
func hasExcessiveRepetition(input string) bool {
	run := 1
	for i := 1; i < len(input); i++ {
		if input[i] == input[i-1] {
			run++
			if run > 10 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}
