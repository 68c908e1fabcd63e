package boardsrv

import (
	"context"
	"strings"
	"time"

	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/hrclient"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/listview"
)

// CampaignService deriva el estado de cada campaña al momento de servirla.
// El reloj es inyectable para que las pruebas fijen "hoy".
type CampaignService struct {
	hr  *hrclient.Client
	now func() time.Time
}

func NewCampaignService(hr *hrclient.Client) *CampaignService {
	return &CampaignService{hr: hr, now: time.Now}
}

// CampaignView es la campaña más su estado derivado para la vista
type CampaignView struct {
	hr.Campaign
	Status hr.CampaignStatus `json:"status"`
}

// CampaignQuery refina el listado; Phase filtra por fase derivada
type CampaignQuery struct {
	ListQuery
	Phase string `query:"phase"`
}

func (s *CampaignService) List(ctx context.Context, q CampaignQuery) (listview.Page[CampaignView], error) {
	campaigns, err := s.hr.ListCampaigns(ctx)
	if err != nil {
		return listview.Page[CampaignView]{}, err
	}

	today := s.now()
	views := make([]CampaignView, len(campaigns))
	for i, c := range campaigns {
		views[i] = CampaignView{Campaign: c, Status: c.StatusOn(today)}
	}

	query := listview.New[CampaignView]().
		Search(q.Search, func(v CampaignView) []string { return []string{v.Name, v.Description} })
	if q.Phase != "" {
		phase := hr.CampaignPhase(strings.ToUpper(q.Phase))
		query.Where(func(v CampaignView) bool { return v.Status.Phase == phase })
	}
	query.SortBy(func(a, b CampaignView) bool { return a.EndDate.Before(b.EndDate) })
	if q.Desc {
		query.Desc()
	}
	query.Page(q.Page, q.PageSize)

	return query.Apply(views), nil
}

func (s *CampaignService) Get(ctx context.Context, id kernel.CampaignID) (*CampaignView, error) {
	campaign, err := s.hr.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CampaignView{Campaign: *campaign, Status: campaign.StatusOn(s.now())}, nil
}

func (s *CampaignService) Create(ctx context.Context, req hr.CreateCampaignRequest) (kernel.CampaignID, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.hr.CreateCampaign(ctx, req)
}

func (s *CampaignService) Update(ctx context.Context, id kernel.CampaignID, req hr.CreateCampaignRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.hr.UpdateCampaign(ctx, id, req)
}

func (s *CampaignService) Delete(ctx context.Context, id kernel.CampaignID) error {
	return s.hr.DeleteCampaign(ctx, id)
}

// AddPosition crea una vacante en la campaña. Una campaña terminada no
// admite vacantes nuevas; una que termina hoy todavía sí.
func (s *CampaignService) AddPosition(ctx context.Context, campaignID kernel.CampaignID, req hr.CreatePositionRequest) (kernel.PositionID, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	campaign, err := s.hr.GetCampaign(ctx, campaignID)
	if err != nil {
		return "", err
	}
	if !campaign.StatusOn(s.now()).CanAddPosition() {
		return "", hr.ErrCampaignEnded().WithDetail("campaignId", campaignID.String())
	}

	return s.hr.CreatePosition(ctx, campaignID, req)
}

func (s *CampaignService) Positions(ctx context.Context, campaignID kernel.CampaignID) ([]hr.CampaignPosition, error) {
	return s.hr.ListPositions(ctx, campaignID)
}
