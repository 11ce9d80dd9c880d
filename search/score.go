package search

import (
	"strings"

	"github.com/BlueSkyGuardian/tabibapp/catalog/entities"
)

// Scoring weights. Therapeutic class matches rank highest because the
// model searches with broad class terms; hospital pricing and a low
// public price are secondary desirability signals.
const (
	therapeuticWeight  = 10
	compositionWeight  = 8
	symptomWeight      = 5
	hospitalPriceBonus = 2
	lowPriceBonus      = 1
	lowPriceThreshold  = 50 // dirhams
)

// score computes the relevance score for a record that already passed the
// eligibility filter. Each matching keyword counts, so adding a matching
// token to the query can only raise a record's score.
func score(med *entities.Medicine, kw keywords) int {
	composition := strings.ToLower(med.Composition)
	therapeutic := strings.ToLower(med.ClasseTherapeutique)
	indications := strings.ToLower(med.Indications)

	s := therapeuticWeight * countContains(therapeutic, kw.therapeutic)
	s += compositionWeight * countContains(composition, kw.composition)
	s += symptomWeight * countContains(indications, kw.symptoms)

	if med.PrixHospitalier != "" {
		s += hospitalPriceBonus
	}

	if med.PPV != "" {
		if price, ok := parsePrice(med.PPV); ok && price < lowPriceThreshold {
			s += lowPriceBonus
		}
	}

	return s
}
