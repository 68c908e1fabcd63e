package hrclient

import (
	"context"
	"fmt"

	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/kernel"
)

func (c *Client) ListCampaigns(ctx context.Context) ([]hr.Campaign, error) {
	var campaigns []hr.Campaign
	if err := c.get(ctx, "/campaigns", &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (c *Client) GetCampaign(ctx context.Context, id kernel.CampaignID) (*hr.Campaign, error) {
	var campaign hr.Campaign
	if err := c.get(ctx, fmt.Sprintf("/campaigns/%s", id), &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (c *Client) CreateCampaign(ctx context.Context, req hr.CreateCampaignRequest) (kernel.CampaignID, error) {
	id, err := c.postCreated(ctx, "/campaigns", req)
	if err != nil {
		return "", err
	}
	return kernel.CampaignID(id), nil
}

func (c *Client) UpdateCampaign(ctx context.Context, id kernel.CampaignID, req hr.CreateCampaignRequest) error {
	return c.put(ctx, fmt.Sprintf("/campaigns/%s", id), req, nil)
}

func (c *Client) DeleteCampaign(ctx context.Context, id kernel.CampaignID) error {
	return c.delete(ctx, fmt.Sprintf("/campaigns/%s", id))
}

// ============================================================================
// Positions
// ============================================================================

func (c *Client) ListPositions(ctx context.Context, campaignID kernel.CampaignID) ([]hr.CampaignPosition, error) {
	var positions []hr.CampaignPosition
	if err := c.get(ctx, fmt.Sprintf("/campaigns/%s/positions", campaignID), &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

func (c *Client) CreatePosition(ctx context.Context, campaignID kernel.CampaignID, req hr.CreatePositionRequest) (kernel.PositionID, error) {
	id, err := c.postCreated(ctx, fmt.Sprintf("/campaigns/%s/positions", campaignID), req)
	if err != nil {
		return "", err
	}
	return kernel.PositionID(id), nil
}

func (c *Client) GetPosition(ctx context.Context, id kernel.PositionID) (*hr.CampaignPosition, error) {
	var position hr.CampaignPosition
	if err := c.get(ctx, fmt.Sprintf("/positions/%s", id), &position); err != nil {
		return nil, err
	}
	return &position, nil
}
