package employee

import "context"

// Filter narrows an employee scan for bulk operations. Empty filter means
// every active employee.
type Filter struct {
	EmployeeIDs  []string
	DepartmentID *string
}

type EmployeeRepository interface {
	// GetByID retrieves a single employee
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves active employees matching the filter
	List(ctx context.Context, filter Filter) ([]Employee, error)
}
