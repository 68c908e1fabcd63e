package boardsrv

import (
	"context"
	"strconv"

	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/hrclient"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/listview"
	"github.com/talentgate/talentgate/pkg/logx"
	"github.com/talentgate/talentgate/pkg/saga"
)

// OnboardingService maneja el flujo post-oferta: creación con notificación
// opcional y las transiciones de aprobación
type OnboardingService struct {
	hr *hrclient.Client
}

func NewOnboardingService(hr *hrclient.Client) *OnboardingService {
	return &OnboardingService{hr: hr}
}

// OnboardQuery refina el listado por estado del flujo
type OnboardQuery struct {
	ListQuery
	Status string `query:"status"`
}

func (s *OnboardingService) List(ctx context.Context, q OnboardQuery) (listview.Page[hr.Onboard], error) {
	onboards, err := s.hr.ListOnboards(ctx)
	if err != nil {
		return listview.Page[hr.Onboard]{}, err
	}

	query := listview.New[hr.Onboard]().
		Search(q.Search, func(o hr.Onboard) []string {
			return []string{o.ApplicantID.String(), strconv.FormatFloat(o.ProposedSalary, 'f', -1, 64)}
		})
	if q.Status != "" {
		status := hr.OnboardStatus(q.Status)
		query.Where(func(o hr.Onboard) bool { return o.Status == status })
	}
	query.SortBy(func(a, b hr.Onboard) bool { return a.StartDate.Before(b.StartDate) })
	if q.Desc {
		query.Desc()
	}
	query.Page(q.Page, q.PageSize)

	return query.Apply(onboards), nil
}

func (s *OnboardingService) Get(ctx context.Context, id kernel.OnboardID) (*hr.Onboard, error) {
	return s.hr.GetOnboard(ctx, id)
}

// Create corre el flujo de onboarding: crear la solicitud es obligatorio;
// la notificación por correo al candidato es best-effort
func (s *OnboardingService) Create(ctx context.Context, req hr.CreateOnboardRequest) (kernel.OnboardID, *saga.Result, error) {
	if err := req.Validate(); err != nil {
		return "", nil, err
	}

	var id kernel.OnboardID
	steps := []saga.Step{{
		Name: "create-onboard",
		Mode: saga.Required,
		Run: func(ctx context.Context) error {
			created, err := s.hr.CreateOnboard(ctx, req)
			if err != nil {
				return err
			}
			id = created
			return nil
		},
	}}

	if req.Notify && !req.TemplateID.IsZero() {
		mail := hr.SendMailRequest{
			TemplateID: req.TemplateID,
			To:         req.NotifyAddress,
			Variables: map[string]string{
				"startDate": req.StartDate.Format("2006-01-02"),
			},
		}
		steps = append(steps, saga.Step{
			Name: "notify-candidate",
			Mode: saga.BestEffort,
			Run: func(ctx context.Context) error {
				return s.hr.SendMail(ctx, mail)
			},
		})
	}

	result, err := saga.Execute(ctx, steps...)
	if err != nil {
		return "", result, err
	}

	logx.WithFields(logx.Fields{"onboardId": id.String(), "warnings": len(result.Warnings)}).
		Infof("onboarding request created")
	return id, result, nil
}

// Transition mueve la solicitud en el flujo de aprobación, validando la
// transición contra el estado actual antes de pedirla al backend
func (s *OnboardingService) Transition(ctx context.Context, id kernel.OnboardID, next hr.OnboardStatus) error {
	onboard, err := s.hr.GetOnboard(ctx, id)
	if err != nil {
		return err
	}

	if !onboard.Status.CanTransitionTo(next) {
		return hr.ErrOnboardTransition().
			WithDetail("from", string(onboard.Status)).
			WithDetail("to", string(next))
	}

	return s.hr.ChangeOnboardStatus(ctx, id, next)
}
