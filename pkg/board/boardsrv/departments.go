package boardsrv

import (
	"context"
	"strings"

	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/hrclient"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/listview"
)

// DepartmentService expone los departamentos para los listados y selects
type DepartmentService struct {
	hr *hrclient.Client
}

func NewDepartmentService(hr *hrclient.Client) *DepartmentService {
	return &DepartmentService{hr: hr}
}

func (s *DepartmentService) List(ctx context.Context, q ListQuery) (listview.Page[hr.Department], error) {
	departments, err := s.hr.ListDepartments(ctx)
	if err != nil {
		return listview.Page[hr.Department]{}, err
	}

	query := listview.New[hr.Department]().
		Search(q.Search, func(d hr.Department) []string { return []string{d.Name, d.Code} }).
		SortBy(func(a, b hr.Department) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		})
	if q.Desc {
		query.Desc()
	}
	query.Page(q.Page, q.PageSize)

	return query.Apply(departments), nil
}

func (s *DepartmentService) Get(ctx context.Context, id kernel.DepartmentID) (*hr.Department, error) {
	return s.hr.GetDepartment(ctx, id)
}

func (s *DepartmentService) Create(ctx context.Context, req hr.CreateDepartmentRequest) (kernel.DepartmentID, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.hr.CreateDepartment(ctx, req)
}

func (s *DepartmentService) Update(ctx context.Context, id kernel.DepartmentID, req hr.UpdateDepartmentRequest) error {
	if id.IsZero() {
		return hr.ErrDepartmentInvalid().WithDetail("id", "required")
	}
	return s.hr.UpdateDepartment(ctx, id, req)
}

func (s *DepartmentService) Delete(ctx context.Context, id kernel.DepartmentID) error {
	if id.IsZero() {
		return hr.ErrDepartmentInvalid().WithDetail("id", "required")
	}
	return s.hr.DeleteDepartment(ctx, id)
}
