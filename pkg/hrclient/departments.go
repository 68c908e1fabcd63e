package hrclient

import (
	"context"
	"fmt"

	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/kernel"
)

func (c *Client) ListDepartments(ctx context.Context) ([]hr.Department, error) {
	var departments []hr.Department
	if err := c.get(ctx, "/departments", &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (c *Client) GetDepartment(ctx context.Context, id kernel.DepartmentID) (*hr.Department, error) {
	var department hr.Department
	if err := c.get(ctx, fmt.Sprintf("/departments/%s", id), &department); err != nil {
		return nil, err
	}
	return &department, nil
}

func (c *Client) CreateDepartment(ctx context.Context, req hr.CreateDepartmentRequest) (kernel.DepartmentID, error) {
	id, err := c.postCreated(ctx, "/departments", req)
	if err != nil {
		return "", err
	}
	return kernel.DepartmentID(id), nil
}

func (c *Client) UpdateDepartment(ctx context.Context, id kernel.DepartmentID, req hr.UpdateDepartmentRequest) error {
	return c.put(ctx, fmt.Sprintf("/departments/%s", id), req, nil)
}

func (c *Client) DeleteDepartment(ctx context.Context, id kernel.DepartmentID) error {
	return c.delete(ctx, fmt.Sprintf("/departments/%s", id))
}
