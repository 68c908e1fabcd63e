package hr

import (
	"net/http"
	"time"

	"github.com/talentgate/talentgate/pkg/errx"
	"github.com/talentgate/talentgate/pkg/kernel"
)

// Department es un departamento con contadores derivados por el backend
type Department struct {
	ID            kernel.DepartmentID `json:"id"`
	Name          string              `json:"name"`
	Code          string              `json:"code"`
	Description   string              `json:"description"`
	EmployeeCount int                 `json:"employeeCount"`
	PositionCount int                 `json:"positionCount"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type CreateDepartmentRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Validate valida lo mínimo antes del submit; la unicidad del código la
// garantiza el backend
func (r CreateDepartmentRequest) Validate() error {
	e := ErrDepartmentInvalid()
	ok := true
	if r.Name == "" {
		e.WithDetail("name", "required")
		ok = false
	}
	if r.Code == "" {
		e.WithDetail("code", "required")
		ok = false
	}
	if ok {
		return nil
	}
	return e
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

var departmentErrors = errx.NewRegistry("DEPARTMENT")

var (
	CodeDepartmentNotFound = departmentErrors.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Department not found")
	CodeDepartmentInvalid  = departmentErrors.Register("INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid department data")
)

func ErrDepartmentNotFound() *errx.Error { return departmentErrors.New(CodeDepartmentNotFound) }
func ErrDepartmentInvalid() *errx.Error  { return departmentErrors.New(CodeDepartmentInvalid) }
