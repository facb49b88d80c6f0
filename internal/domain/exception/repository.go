package exception

import "context"

type ExceptionRepository interface {
	// Create inserts a pending exception
	Create(ctx context.Context, e Exception) (Exception, error)

	// GetByID retrieves an exception. With forUpdate the row is locked for
	// the enclosing transaction so concurrent reviews serialize.
	GetByID(ctx context.Context, id string, forUpdate bool) (Exception, error)

	// UpdateStatus records the review decision
	UpdateStatus(ctx context.Context, id string, status Status, reviewerID string) error

	// Delete removes the exception row itself; the service removes the
	// overrides it produced first
	Delete(ctx context.Context, id string) error
}
