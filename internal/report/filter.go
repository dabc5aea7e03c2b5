package report

import (
	"github.com/fleetpaper/settlement-audit/internal/batch"
	"github.com/fleetpaper/settlement-audit/internal/settlement"
	"go.uber.org/zap"
)

// FilterResult reports the outcome of a date-range filter: how many
// documents were pruned and the display strings of the range actually
// applied (swapped when the user entered them reversed).
type FilterResult struct {
	RemovedCount int    `json:"removed_count"`
	Start        string `json:"start"`
	End          string `json:"end"`
}

// RangeFilter prunes a batch in place to the documents whose first pickup
// date falls inside a user-entered range.
type RangeFilter struct {
	store     *batch.Store
	extractor TextExtractor
	logger    *zap.Logger
}

// NewRangeFilter creates a filter operating on the given store.
func NewRangeFilter(store *batch.Store, extractor TextExtractor, logger *zap.Logger) *RangeFilter {
	return &RangeFilter{store: store, extractor: extractor, logger: logger}
}

// Apply filters the batch under id to the pickup-date range described by
// the free-form strings startRaw and endRaw. A reversed range is swapped
// before filtering, and the returned display strings reflect the swap. A
// bound that does not parse leaves that side open. Filtering fails open: a
// document with no extractable pickup date is always retained.
func (f *RangeFilter) Apply(id, startRaw, endRaw string) FilterResult {
	start, hasStart := settlement.ParseDate(startRaw)
	end, hasEnd := settlement.ParseDate(endRaw)

	if hasStart && hasEnd && end.Before(start) {
		start, end = end, start
		startRaw, endRaw = endRaw, startRaw
	}

	removed := f.store.Filter(id, func(doc batch.Document) bool {
		pages, err := f.extractor.ExtractPages(doc.Data)
		if err != nil {
			return true
		}
		pickup, ok := settlement.FirstPickupDate(settlement.Normalize(pages))
		if !ok {
			return true
		}
		if hasStart && pickup.Before(start) {
			return false
		}
		if hasEnd && pickup.After(end) {
			return false
		}
		return true
	})

	f.logger.Info("Batch filtered by pickup date",
		zap.String("batch_id", id),
		zap.String("start", startRaw),
		zap.String("end", endRaw),
		zap.Int("removed", removed))

	return FilterResult{RemovedCount: removed, Start: startRaw, End: endRaw}
}
