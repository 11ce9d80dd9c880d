// Package entities defines the medicine catalog data structures.
package entities

// StatutCommercialise is the only commercialization status that makes a
// medicine eligible for search results.
const StatutCommercialise = "Commercialisé"

// TableauA is the regulatory schedule class that requires a prescription.
const TableauA = "A"

// Medicine represents a single packaged medicine variant from the Moroccan
// medicines database. Different dosages and presentations of the same drug
// are distinct records and are never merged.
//
// Field names mirror the source database (French), prices are kept as raw
// strings because the source mixes currency symbols and formatting into them.
type Medicine struct {
	NomCommercial       string `json:"nom_commercial"`
	Composition         string `json:"composition"`
	ClasseTherapeutique string `json:"classe_therapeutique"`
	Indications         string `json:"indications"`
	Dosage              string `json:"dosage"`
	Presentation        string `json:"presentation"`
	PPV                 string `json:"ppv"`
	PrixHospitalier     string `json:"prix_hospitalier,omitempty"`
	Distributeur        string `json:"distributeur"`
	Tableau             string `json:"tableau"`
	Statut              string `json:"statut"`
}

// IsCommercialized reports whether the medicine is currently on the market.
func (m *Medicine) IsCommercialized() bool {
	return m.Statut == StatutCommercialise
}

// RequiresPrescription reports whether the schedule class mandates a
// prescription (tableau A).
func (m *Medicine) RequiresPrescription() bool {
	return m.Tableau == TableauA
}
