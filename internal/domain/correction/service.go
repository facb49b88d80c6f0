package correction

import "context"

// CorrectionService defines the idempotent bulk clearing operations
type CorrectionService interface {
	// BulkClear scans scheduled employee-days in the month for the kind's
	// predicate, writes clearing overrides for days not already cleared,
	// and invalidates validated months only for employees actually changed
	BulkClear(ctx context.Context, req BulkClearRequest) (BulkClearResult, error)
}
