package quality

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vetcepi/vetcepi-backend/internal/domain"
)

// Report summarizes catalogue completeness.
type Report struct {
	Total      int
	Complete   int // score >= 80
	Partial    int // score 50..79
	Incomplete int // score < 50

	AverageScore float64

	// MissingFields counts records lacking each optional field.
	MissingFields map[string]int

	// InvalidBarcodes are barcodes that do not look like EAN-8..EAN-13/UPC.
	InvalidBarcodes []string

	// DuplicateBarcodes are barcodes claimed by more than one record.
	DuplicateBarcodes []string

	// LowQuality lists records scoring below 50.
	LowQuality []ScoredMedicine
}

// ScoredMedicine pairs a record with its completeness score.
type ScoredMedicine struct {
	Medicine domain.Medicine
	Score    int
}

// Check scores the whole catalogue and returns the report.
func (s *Service) Check(ctx context.Context) (*Report, error) {
	medicines, err := s.medicines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}

	report := &Report{
		Total:         len(medicines),
		MissingFields: map[string]int{},
	}

	seen := map[string]int{}
	total := 0

	for i := range medicines {
		m := &medicines[i]

		score := Score(m)
		total += score

		switch {
		case score >= completeThreshold:
			report.Complete++
		case score >= partialThreshold:
			report.Partial++
		default:
			report.Incomplete++
			report.LowQuality = append(report.LowQuality, ScoredMedicine{Medicine: *m, Score: score})
		}

		if !present(m.Manufacturer) {
			report.MissingFields["manufacturer"]++
		}
		if !present(m.Dosage) {
			report.MissingFields["dosage"]++
		}
		if !present(m.Form) {
			report.MissingFields["form"]++
		}
		if !present(m.Species) {
			report.MissingFields["species"]++
		}
		if !present(m.Indication) {
			report.MissingFields["indication"]++
		}

		barcode := domain.NormalizeBarcode(m.Barcode)
		if !domain.ValidBarcode(barcode) {
			report.InvalidBarcodes = append(report.InvalidBarcodes, m.Barcode)
		}
		seen[barcode]++
	}

	for barcode, count := range seen {
		if count > 1 {
			report.DuplicateBarcodes = append(report.DuplicateBarcodes, barcode)
		}
	}

	if report.Total > 0 {
		report.AverageScore = float64(total) / float64(report.Total)
	}

	s.log.InfoContext(ctx, "catalogue quality checked",
		slog.Int("total", report.Total),
		slog.Int("complete", report.Complete),
		slog.Int("incomplete", report.Incomplete),
	)

	return report, nil
}
