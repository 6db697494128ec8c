// Command medcheck scores the medicine catalogue for completeness and
// prints a quality report. It is intended for periodic review of data
// imported from scanners and manual entry.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/vetcepi/vetcepi-backend/internal/adapter/postgres"
	"github.com/vetcepi/vetcepi-backend/internal/adapter/postgres/medicine"
	"github.com/vetcepi/vetcepi-backend/internal/app"
	"github.com/vetcepi/vetcepi-backend/internal/config"
	"github.com/vetcepi/vetcepi-backend/internal/service/quality"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := quality.NewService(logger, medicine.New(pool))

	report, err := svc.Check(ctx)
	if err != nil {
		logger.Error("quality check failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("catalogue quality report",
		slog.Int("total", report.Total),
		slog.Int("complete", report.Complete),
		slog.Int("partial", report.Partial),
		slog.Int("incomplete", report.Incomplete),
		slog.Float64("average_score", report.AverageScore),
	)

	for field, count := range report.MissingFields {
		if count > 0 {
			logger.Info("missing field", slog.String("field", field), slog.Int("records", count))
		}
	}

	if len(report.InvalidBarcodes) > 0 {
		logger.Warn("invalid barcodes", slog.Any("barcodes", report.InvalidBarcodes))
	}
	if len(report.DuplicateBarcodes) > 0 {
		logger.Warn("duplicate barcodes", slog.Any("barcodes", report.DuplicateBarcodes))
	}

	for _, sm := range report.LowQuality {
		logger.Warn("low quality record",
			slog.String("medicine_id", sm.Medicine.ID.String()),
			slog.String("name", sm.Medicine.Name),
			slog.String("barcode", sm.Medicine.Barcode),
			slog.Int("score", sm.Score),
		)
	}
}
