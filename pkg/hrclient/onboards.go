package hrclient

import (
	"context"
	"fmt"

	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/kernel"
)

func (c *Client) ListOnboards(ctx context.Context) ([]hr.Onboard, error) {
	var onboards []hr.Onboard
	if err := c.get(ctx, "/onboards", &onboards); err != nil {
		return nil, err
	}
	return onboards, nil
}

func (c *Client) GetOnboard(ctx context.Context, id kernel.OnboardID) (*hr.Onboard, error) {
	var onboard hr.Onboard
	if err := c.get(ctx, fmt.Sprintf("/onboards/%s", id), &onboard); err != nil {
		return nil, err
	}
	return &onboard, nil
}

func (c *Client) CreateOnboard(ctx context.Context, req hr.CreateOnboardRequest) (kernel.OnboardID, error) {
	id, err := c.postCreated(ctx, "/onboards", req)
	if err != nil {
		return "", err
	}
	return kernel.OnboardID(id), nil
}

// ChangeOnboardStatus aplica la transición ya validada por el servicio
func (c *Client) ChangeOnboardStatus(ctx context.Context, id kernel.OnboardID, status hr.OnboardStatus) error {
	body := map[string]string{"status": string(status)}
	return c.put(ctx, fmt.Sprintf("/onboards/%s/status", id), body, nil)
}
