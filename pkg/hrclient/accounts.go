package hrclient

import (
	"context"
	"fmt"

	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/kernel"
)

// ListAccounts trae el directorio completo; el filtrado es del lado nuestro
func (c *Client) ListAccounts(ctx context.Context) ([]hr.Account, error) {
	var accounts []hr.Account
	if err := c.get(ctx, "/accounts", &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) GetAccount(ctx context.Context, id kernel.AccountID) (*hr.Account, error) {
	var account hr.Account
	if err := c.get(ctx, fmt.Sprintf("/accounts/%s", id), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateAccount registra la cuenta y devuelve el ID asignado por el backend
func (c *Client) CreateAccount(ctx context.Context, req hr.CreateAccountRequest) (kernel.AccountID, error) {
	id, err := c.postCreated(ctx, "/accounts", req)
	if err != nil {
		return "", err
	}
	return kernel.AccountID(id), nil
}

func (c *Client) UpdateAccount(ctx context.Context, id kernel.AccountID, req hr.UpdateAccountRequest) error {
	return c.put(ctx, fmt.Sprintf("/accounts/%s", id), req, nil)
}

func (c *Client) DeleteAccount(ctx context.Context, id kernel.AccountID) error {
	return c.delete(ctx, fmt.Sprintf("/accounts/%s", id))
}

// AssignDepartment es el paso secundario del alta de cuenta; puede fallar
// sin invalidar la cuenta recién creada
func (c *Client) AssignDepartment(ctx context.Context, accountID kernel.AccountID, departmentID kernel.DepartmentID) error {
	body := map[string]string{"departmentId": departmentID.String()}
	return c.put(ctx, fmt.Sprintf("/accounts/%s/department", accountID), body, nil)
}
