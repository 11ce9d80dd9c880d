package assistant

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BlueSkyGuardian/tabibapp/llm"
	"github.com/BlueSkyGuardian/tabibapp/search"
)

// SearchToolName is the function name the model must use to query the
// medicine catalog.
const SearchToolName = "search_medicine_database"

// SearchArgs mirrors the JSON schema of the catalog search tool. The model
// fills these from the conversation; patientAge and patientGender are
// required so that pediatric and pregnancy precautions can be applied.
type SearchArgs struct {
	Symptoms         string   `json:"symptoms,omitempty"`
	Condition        string   `json:"condition,omitempty"`
	Composition      string   `json:"composition,omitempty"`
	TherapeuticClass string   `json:"therapeuticClass,omitempty"`
	PatientAge       *int     `json:"patientAge,omitempty"`
	PatientGender    string   `json:"patientGender,omitempty"`
	MaxPrice         *float64 `json:"maxPrice,omitempty"`
}

// parseSearchArgs decodes the raw tool-call arguments and enforces the
// required patient fields.
func parseSearchArgs(raw json.RawMessage) (SearchArgs, error) {
	var args SearchArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return SearchArgs{}, fmt.Errorf("decoding search arguments: %w", err)
	}
	if args.PatientAge == nil {
		return SearchArgs{}, errors.New("missing required argument patientAge")
	}
	if args.PatientGender == "" {
		return SearchArgs{}, errors.New("missing required argument patientGender")
	}
	return args, nil
}

// ToQuery converts tool arguments into an engine query. Zero values
// disable the corresponding filter, as if the model had omitted them:
// an age of 0 must not trigger the pediatric checks and a maxPrice of 0
// must not reject every priced record.
func (a SearchArgs) ToQuery() search.Query {
	q := search.Query{
		Symptoms:         a.Symptoms,
		Condition:        a.Condition,
		Composition:      a.Composition,
		TherapeuticClass: a.TherapeuticClass,
		PatientGender:    a.PatientGender,
	}
	if a.PatientAge != nil && *a.PatientAge != 0 {
		q.PatientAge = a.PatientAge
	}
	if a.MaxPrice != nil && *a.MaxPrice != 0 {
		q.MaxPrice = a.MaxPrice
	}
	return q
}

// searchToolDefinition describes the catalog search function to the model.
func searchToolDefinition() llm.ToolDefinition {
	return llm.ToolDefinition{
		Name:        SearchToolName,
		Description: "Search the Moroccan medicines database. Use broad medical keywords for better results. The search uses OR logic across composition and therapeutic class fields. IMPORTANT: Always include patient age and gender for appropriate recommendations.",
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"symptoms": map[string]interface{}{
					"type":        "string",
					"description": "User symptoms in their own words (optional, for reference only)",
				},
				"condition": map[string]interface{}{
					"type":        "string",
					"description": "Medical condition name (optional, for reference only)",
				},
				"composition": map[string]interface{}{
					"type":        "string",
					"description": "IMPORTANT: Active ingredient names to search for. Use common drug names: 'paracetamol', 'ibuprofène', 'amoxicilline', 'metformine', 'atorvastatine', etc. Can provide multiple separated by spaces.",
				},
				"therapeuticClass": map[string]interface{}{
					"type":        "string",
					"description": "IMPORTANT: Therapeutic class keywords. Use broad medical terms: 'analgésique', 'antipyrétique', 'anti-inflammatoire', 'antibiotique', 'antidiabétique', 'antihypertenseur', 'antirhumatismal', 'hypolipémiant', etc. Can provide multiple separated by spaces.",
				},
				"patientAge": map[string]interface{}{
					"type":        "number",
					"description": "REQUIRED: Patient's age in years. Used to filter appropriate medicines (pediatric vs adult formulations).",
				},
				"patientGender": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"homme", "femme", "garçon", "fille"},
					"description": "REQUIRED: Patient's gender. Used for gender-specific recommendations (e.g., pregnancy considerations).",
				},
				"maxPrice": map[string]interface{}{
					"type":        "number",
					"description": "Maximum price in Moroccan dirhams (optional)",
				},
			},
			"required": []string{"patientAge", "patientGender"},
		},
	}
}
