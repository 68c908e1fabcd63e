package hr

import (
	"net/http"
	"strings"
	"time"

	"github.com/talentgate/talentgate/pkg/errx"
	"github.com/talentgate/talentgate/pkg/kernel"
)

// ============================================================================
// Account Entity
// ============================================================================

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Account es una cuenta del sistema HR: identidad + perfil, un departamento
// opcional y uno o más roles
type Account struct {
	ID           kernel.AccountID     `json:"id"`
	FirstName    string               `json:"firstName"`
	LastName     string               `json:"lastName"`
	Username     string               `json:"username"`
	Email        string               `json:"email"`
	Phone        string               `json:"phone"`
	Gender       Gender               `json:"gender"`
	DateOfBirth  *time.Time           `json:"dateOfBirth,omitempty"`
	DepartmentID *kernel.DepartmentID `json:"departmentId,omitempty"`
	Roles        []string             `json:"roles"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// FullName arma el nombre para mostrar
func (a *Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// HasDepartment indica si la cuenta está asignada a un departamento
func (a *Account) HasDepartment() bool {
	return a.DepartmentID != nil && !a.DepartmentID.IsZero()
}

// HasRole verifica pertenencia exacta de un rol
func (a *Account) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// SearchFields son los campos sobre los que busca el directorio
func (a *Account) SearchFields() []string {
	return []string{a.FirstName, a.LastName, a.Username, a.Email, a.Phone}
}

// ============================================================================
// Service DTOs
// ============================================================================

// CreateAccountRequest crea una cuenta; la asignación de departamento es un
// paso secundario best-effort del flujo de creación
type CreateAccountRequest struct {
	FirstName    string               `json:"firstName"`
	LastName     string               `json:"lastName"`
	Username     string               `json:"username"`
	Email        string               `json:"email"`
	Phone        string               `json:"phone"`
	Gender       Gender               `json:"gender"`
	DateOfBirth  *time.Time           `json:"dateOfBirth,omitempty"`
	Roles        []string             `json:"roles"`
	DepartmentID *kernel.DepartmentID `json:"departmentId,omitempty"`
}

// Validate aplica la validación previa al submit. Invariante: el conjunto
// de roles no puede ser vacío al crear.
func (r CreateAccountRequest) Validate() error {
	e := ErrAccountInvalid()
	ok := true
	if r.Username == "" {
		e.WithDetail("username", "required")
		ok = false
	}
	if r.Email == "" {
		e.WithDetail("email", "required")
		ok = false
	} else if !strings.Contains(r.Email, "@") {
		e.WithDetail("email", "must be a valid email address")
		ok = false
	}
	if r.FirstName == "" {
		e.WithDetail("firstName", "required")
		ok = false
	}
	if len(r.Roles) == 0 {
		e.WithDetail("roles", "at least one role is required")
		ok = false
	}
	if ok {
		return nil
	}
	return e
}

type UpdateAccountRequest struct {
	FirstName   *string    `json:"firstName,omitempty"`
	LastName    *string    `json:"lastName,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Gender      *Gender    `json:"gender,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Roles       []string   `json:"roles,omitempty"`
}

// ============================================================================
// Error Registry
// ============================================================================

var accountErrors = errx.NewRegistry("ACCOUNT")

var (
	CodeAccountNotFound = accountErrors.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Account not found")
	CodeAccountInvalid  = accountErrors.Register("INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid account data")
)

func ErrAccountNotFound() *errx.Error { return accountErrors.New(CodeAccountNotFound) }
func ErrAccountInvalid() *errx.Error  { return accountErrors.New(CodeAccountInvalid) }
