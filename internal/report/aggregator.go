package report

import (
	"errors"

	"github.com/fleetpaper/settlement-audit/internal/batch"
	"github.com/fleetpaper/settlement-audit/internal/document"
	"github.com/fleetpaper/settlement-audit/internal/settlement"
	"go.uber.org/zap"
)

// TextExtractor produces the per-page plain text of a document.
// Satisfied by document.Reader; tests substitute a stub.
type TextExtractor interface {
	ExtractPages(data []byte) ([]string, error)
}

// Row is the extraction outcome for one file. A nil Value means the field's
// pattern was not found, a first-class outcome rather than an error.
type Row struct {
	FileName   string   `json:"file_name"`
	DateRange  string   `json:"date_range,omitempty"`
	Value      *float64 `json:"value"`
	Unreadable bool     `json:"unreadable,omitempty"`
}

// Report aggregates one field across a batch. Total sums only rows with a
// present value; Missing counts the absent ones.
type Report struct {
	Field   settlement.Field `json:"field"`
	Rows    []Row            `json:"rows"`
	Total   float64          `json:"total"`
	Missing int              `json:"missing"`
}

// Aggregator runs a field extractor over every document in a batch.
type Aggregator struct {
	extractor TextExtractor
	logger    *zap.Logger
}

// NewAggregator creates an aggregator backed by the given text provider.
func NewAggregator(extractor TextExtractor, logger *zap.Logger) *Aggregator {
	return &Aggregator{extractor: extractor, logger: logger}
}

// Aggregate produces a report for field over documents, in stored order.
// Per-document failures are isolated: an unreadable file degrades to an
// all-absent row and never halts the batch. Identical inputs always yield
// an identical report.
func (a *Aggregator) Aggregate(documents []batch.Document, field settlement.Field) *Report {
	report := &Report{
		Field: field,
		Rows:  make([]Row, 0, len(documents)),
	}

	for _, doc := range documents {
		row := Row{FileName: doc.Name}

		pages, err := a.extractor.ExtractPages(doc.Data)
		if err != nil {
			if !errors.Is(err, document.ErrUnreadable) {
				a.logger.Warn("Text extraction failed",
					zap.String("file", doc.Name),
					zap.Error(err))
			}
			row.Unreadable = true
			report.Rows = append(report.Rows, row)
			report.Missing++
			continue
		}

		text := settlement.Normalize(pages)
		if rangeDisplay, ok := settlement.ExtractPickupRange(text); ok {
			row.DateRange = rangeDisplay
		}

		if value, ok := field.Extract(text); ok {
			row.Value = &value
			report.Total += value
		} else {
			report.Missing++
		}

		report.Rows = append(report.Rows, row)
	}

	a.logger.Debug("Batch aggregated",
		zap.String("field", string(field)),
		zap.Int("files", len(documents)),
		zap.Int("missing", report.Missing),
		zap.Float64("total", report.Total))

	return report
}
