package boardsrv

import (
	"context"

	"github.com/talentgate/talentgate/pkg/fetch"
	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/hrclient"
)

// DashboardService sirve los agregados del home. Las recargas son
// última-gana: un refresh nuevo supersede al que estaba en vuelo.
type DashboardService struct {
	hr     *hrclient.Client
	loader *fetch.Loader
}

func NewDashboardService(hr *hrclient.Client) *DashboardService {
	return &DashboardService{
		hr:     hr,
		loader: fetch.NewLoader(),
	}
}

// Stats trae las estadísticas agregadas. Si la carga fue superseded por un
// refresh más nuevo devuelve fetch.ErrSuperseded, que el handler descarta
// en silencio.
func (s *DashboardService) Stats(ctx context.Context) (*hr.DashboardStats, error) {
	var stats *hr.DashboardStats
	err := s.loader.Load(ctx, "dashboard-stats", func(ctx context.Context) error {
		got, err := s.hr.GetDashboardStats(ctx)
		if err != nil {
			return err
		}
		stats = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Shutdown cancela cualquier carga en vuelo
func (s *DashboardService) Shutdown() {
	s.loader.CancelAll()
}
