package settlement

import "errors"

// Parse errors. Extractors downgrade these to "not found" so a single
// malformed document never aborts aggregation over the rest of a batch.
var (
	ErrMalformedNumber = errors.New("captured text is not a parseable amount")
	ErrMalformedDate   = errors.New("captured text is not a valid calendar date")
)
