package boardsrv

import (
	"context"

	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/hrclient"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/listview"
	"github.com/talentgate/talentgate/pkg/logx"
)

// CandidateService sigue a los CVs a través del pipeline de entrevistas
type CandidateService struct {
	hr *hrclient.Client
}

func NewCandidateService(hr *hrclient.Client) *CandidateService {
	return &CandidateService{hr: hr}
}

// CandidateQuery refina el listado de candidatos. Status usa -1 como
// "sin filtro" porque 0 es un estado válido (Pending).
type CandidateQuery struct {
	ListQuery
	PositionID string `query:"positionId"`
	Status     int    `query:"status"`
}

func (s *CandidateService) List(ctx context.Context, q CandidateQuery) (listview.Page[hr.Applicant], error) {
	applicants, err := s.hr.ListApplicants(ctx, kernel.PositionID(q.PositionID))
	if err != nil {
		return listview.Page[hr.Applicant]{}, err
	}

	query := listview.New[hr.Applicant]().
		Search(q.Search, func(a hr.Applicant) []string { return a.SearchFields() })
	if q.Status >= 0 {
		status := hr.ApplicantStatus(q.Status)
		query.Where(func(a hr.Applicant) bool { return a.Status == status })
	}
	query.SortBy(func(a, b hr.Applicant) bool { return a.CreatedAt.Before(b.CreatedAt) })
	if q.Desc {
		query.Desc()
	}
	query.Page(q.Page, q.PageSize)

	return query.Apply(applicants), nil
}

func (s *CandidateService) Get(ctx context.Context, id kernel.ApplicantID) (*hr.Applicant, error) {
	return s.hr.GetApplicant(ctx, id)
}

func (s *CandidateService) Create(ctx context.Context, req hr.CreateApplicantRequest) (kernel.ApplicantID, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.hr.CreateApplicant(ctx, req)
}

// ChangeStatus valida la transición contra el estado actual antes de pedirla
// al backend; una transición ilegal nunca sale del gateway
func (s *CandidateService) ChangeStatus(ctx context.Context, id kernel.ApplicantID, next hr.ApplicantStatus) error {
	applicant, err := s.hr.GetApplicant(ctx, id)
	if err != nil {
		return err
	}

	if !applicant.Status.CanTransitionTo(next) {
		return hr.ErrApplicantTransition().
			WithDetail("from", applicant.Status.String()).
			WithDetail("to", next.String())
	}

	if err := s.hr.ChangeApplicantStatus(ctx, id, next); err != nil {
		return err
	}

	logx.WithFields(logx.Fields{
		"applicantId": id.String(),
		"from":        applicant.Status.String(),
		"to":          next.String(),
	}).Infof("applicant status changed")
	return nil
}

// PipelineView es el pipeline de entrevistas del candidato listo para
// renderizar: el proceso y sus nodos con estado y conectores
type PipelineView struct {
	Process hr.InterviewProcess `json:"process"`
	Nodes   []hr.StageNode      `json:"nodes"`
}

// Pipeline arma el tracker de etapas del candidato
func (s *CandidateService) Pipeline(ctx context.Context, id kernel.ApplicantID) (*PipelineView, error) {
	process, err := s.hr.GetApplicantProcess(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PipelineView{
		Process: *process,
		Nodes:   hr.TrackStages(process.Stages),
	}, nil
}
