package quality

import (
	"strings"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

// Field weights. They sum to 100.
const (
	weightName         = 20
	weightBarcode      = 20
	weightManufacturer = 15
	weightDosage       = 15
	weightForm         = 10
	weightSpecies      = 10
	weightIndication   = 10
)

// Completeness bands.
const (
	completeThreshold = 80
	partialThreshold  = 50
)

// Score rates one record's completeness from 0 to 100.
func Score(m *domain.Medicine) int {
	score := 0
	if strings.TrimSpace(m.Name) != "" {
		score += weightName
	}
	if strings.TrimSpace(m.Barcode) != "" {
		score += weightBarcode
	}
	if present(m.Manufacturer) {
		score += weightManufacturer
	}
	if present(m.Dosage) {
		score += weightDosage
	}
	if present(m.Form) {
		score += weightForm
	}
	if present(m.Species) {
		score += weightSpecies
	}
	if present(m.Indication) {
		score += weightIndication
	}
	return score
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
