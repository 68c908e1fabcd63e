package hrclient

import (
	"context"

	"github.com/talentgate/talentgate/pkg/hr"
)

// GetDashboardStats trae los contadores agregados del home del dashboard
func (c *Client) GetDashboardStats(ctx context.Context) (*hr.DashboardStats, error) {
	var stats hr.DashboardStats
	if err := c.get(ctx, "/dashboard/statistics", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
