package boardsrv

import (
	"context"
	"strings"

	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/hrclient"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/listview"
	"github.com/talentgate/talentgate/pkg/logx"
	"github.com/talentgate/talentgate/pkg/saga"
)

// AccountService maneja el directorio de cuentas y el flujo de alta
type AccountService struct {
	hr *hrclient.Client
}

func NewAccountService(hr *hrclient.Client) *AccountService {
	return &AccountService{hr: hr}
}

// DirectoryQuery refina el directorio. Department acepta un ID, vacío (sin
// filtro) o el centinela "none" para cuentas sin departamento.
type DirectoryQuery struct {
	ListQuery
	Department string `query:"department"`
	Role       string `query:"role"`
}

// Directory trae el directorio completo del backend y refina localmente
func (s *AccountService) Directory(ctx context.Context, q DirectoryQuery) (listview.Page[hr.Account], error) {
	accounts, err := s.hr.ListAccounts(ctx)
	if err != nil {
		return listview.Page[hr.Account]{}, err
	}

	query := listview.New[hr.Account]().
		Search(q.Search, func(a hr.Account) []string { return a.SearchFields() })

	switch {
	case q.Department == DepartmentNone:
		query.Where(func(a hr.Account) bool { return !a.HasDepartment() })
	case q.Department != "":
		dept := kernel.DepartmentID(q.Department)
		query.Where(func(a hr.Account) bool { return a.DepartmentID != nil && *a.DepartmentID == dept })
	}

	if q.Role != "" {
		query.Where(func(a hr.Account) bool { return a.HasRole(q.Role) })
	}

	query.SortBy(accountLess(q.SortBy))
	if q.Desc {
		query.Desc()
	}
	query.Page(q.Page, q.PageSize)

	return query.Apply(accounts), nil
}

func accountLess(field string) func(a, b hr.Account) bool {
	switch field {
	case "email":
		return func(a, b hr.Account) bool {
			return strings.ToLower(a.Email) < strings.ToLower(b.Email)
		}
	case "createdAt":
		return func(a, b hr.Account) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return func(a, b hr.Account) bool {
			return strings.ToLower(a.FullName()) < strings.ToLower(b.FullName())
		}
	}
}

func (s *AccountService) Get(ctx context.Context, id kernel.AccountID) (*hr.Account, error) {
	return s.hr.GetAccount(ctx, id)
}

// Create corre el alta como flujo de dos pasos: crear la cuenta es
// obligatorio; asignar el departamento es best-effort. Una falla en la
// asignación deja la cuenta creada y vuelve como warning.
func (s *AccountService) Create(ctx context.Context, req hr.CreateAccountRequest) (kernel.AccountID, *saga.Result, error) {
	if err := req.Validate(); err != nil {
		return "", nil, err
	}

	var id kernel.AccountID
	steps := []saga.Step{{
		Name: "create-account",
		Mode: saga.Required,
		Run: func(ctx context.Context) error {
			created, err := s.hr.CreateAccount(ctx, req)
			if err != nil {
				return err
			}
			id = created
			return nil
		},
	}}

	if req.DepartmentID != nil && !req.DepartmentID.IsZero() {
		dept := *req.DepartmentID
		steps = append(steps, saga.Step{
			Name: "assign-department",
			Mode: saga.BestEffort,
			Run: func(ctx context.Context) error {
				return s.hr.AssignDepartment(ctx, id, dept)
			},
		})
	}

	result, err := saga.Execute(ctx, steps...)
	if err != nil {
		return "", result, err
	}

	logx.WithFields(logx.Fields{"accountId": id.String(), "warnings": len(result.Warnings)}).
		Infof("account created")
	return id, result, nil
}

func (s *AccountService) Update(ctx context.Context, id kernel.AccountID, req hr.UpdateAccountRequest) error {
	if id.IsZero() {
		return hr.ErrAccountInvalid().WithDetail("id", "required")
	}
	return s.hr.UpdateAccount(ctx, id, req)
}

func (s *AccountService) Delete(ctx context.Context, id kernel.AccountID) error {
	if id.IsZero() {
		return hr.ErrAccountInvalid().WithDetail("id", "required")
	}
	return s.hr.DeleteAccount(ctx, id)
}

// AssignDepartment reasigna el departamento de una cuenta existente
func (s *AccountService) AssignDepartment(ctx context.Context, id kernel.AccountID, dept kernel.DepartmentID) error {
	if id.IsZero() || dept.IsZero() {
		return hr.ErrAccountInvalid().WithDetail("departmentId", "account and department are required")
	}
	return s.hr.AssignDepartment(ctx, id, dept)
}
