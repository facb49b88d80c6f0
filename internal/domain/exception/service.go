package exception

import "context"

// ExceptionService defines the approval workflow around exceptions
type ExceptionService interface {
	// Create files a pending exception
	Create(ctx context.Context, req CreateExceptionRequest) (ExceptionResponse, error)

	// Approve applies the exception as overrides, one per day of its range
	Approve(ctx context.Context, id string) (ExceptionResponse, error)

	// Reject closes the exception without applying anything
	Reject(ctx context.Context, id string) (ExceptionResponse, error)

	// Delete removes the exception and every override it produced
	Delete(ctx context.Context, id string) error
}
