package punch

import "context"

// PunchService defines business logic for raw punch ingestion
type PunchService interface {
	// Ingest stores a raw punch, resolving the free-text name to an
	// employee identity once, at write time
	Ingest(ctx context.Context, req IngestPunchRequest) (PunchResponse, error)

	// Delete removes a punch and invalidates any validated month it sat in
	Delete(ctx context.Context, id string) error

	// ResolveUnmatched retries identity resolution for punches ingested
	// before their employee existed. Returns the number resolved.
	ResolveUnmatched(ctx context.Context) (int, error)
}
