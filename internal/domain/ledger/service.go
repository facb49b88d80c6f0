package ledger

import "context"

// LedgerService defines the write side of the overtime ledger
type LedgerService interface {
	// RecordOvertime inserts an overtime entry and invalidates the
	// validated month it lands in
	RecordOvertime(ctx context.Context, req RecordOvertimeRequest) (OvertimeResponse, error)
}
