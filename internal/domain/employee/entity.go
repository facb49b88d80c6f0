package employee

import "time"

type Employee struct {
	ID           string
	FirstName    string
	LastName     string
	DepartmentID *string
	HireDate     *time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	DepartmentName *string
}
