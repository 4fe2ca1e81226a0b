package employee

import "employee-service/internal/hateoas"

// EmployeeDTO is the client facing field set. Identity travels as a link,
// never as a raw id.
type EmployeeDTO struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role"`
	Email string `json:"email" binding:"required,email"`
}

type EmployeeModel struct {
	EmployeeDTO
	Links hateoas.Links `json:"links"`
}

type EmployeeCollection struct {
	Content []EmployeeModel `json:"content"`
	Links   hateoas.Links   `json:"links"`
}

// Result carries the status a write operation should be reported with.
// Model is nil for 204 results.
type Result struct {
	StatusCode int
	Location   string
	Model      *EmployeeModel
}
