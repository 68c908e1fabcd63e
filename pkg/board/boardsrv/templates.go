package boardsrv

import (
	"context"
	"strings"

	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/hrclient"
	"github.com/talentgate/talentgate/pkg/kernel"
	"github.com/talentgate/talentgate/pkg/listview"
)

// TemplateService administra las plantillas de correo y el envío manual
type TemplateService struct {
	hr *hrclient.Client
}

func NewTemplateService(hr *hrclient.Client) *TemplateService {
	return &TemplateService{hr: hr}
}

func (s *TemplateService) List(ctx context.Context, q ListQuery) (listview.Page[hr.EmailTemplate], error) {
	templates, err := s.hr.ListTemplates(ctx)
	if err != nil {
		return listview.Page[hr.EmailTemplate]{}, err
	}

	query := listview.New[hr.EmailTemplate]().
		Search(q.Search, func(t hr.EmailTemplate) []string { return t.SearchFields() }).
		SortBy(func(a, b hr.EmailTemplate) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		})
	if q.Desc {
		query.Desc()
	}
	query.Page(q.Page, q.PageSize)

	return query.Apply(templates), nil
}

func (s *TemplateService) Get(ctx context.Context, id kernel.TemplateID) (*hr.EmailTemplate, error) {
	return s.hr.GetTemplate(ctx, id)
}

func (s *TemplateService) Create(ctx context.Context, req hr.SaveTemplateRequest) (kernel.TemplateID, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.hr.CreateTemplate(ctx, req)
}

func (s *TemplateService) Update(ctx context.Context, id kernel.TemplateID, req hr.SaveTemplateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.hr.UpdateTemplate(ctx, id, req)
}

func (s *TemplateService) Delete(ctx context.Context, id kernel.TemplateID) error {
	return s.hr.DeleteTemplate(ctx, id)
}

// Send dispara un correo basado en plantilla a un destinatario puntual
func (s *TemplateService) Send(ctx context.Context, req hr.SendMailRequest) error {
	if req.TemplateID.IsZero() {
		return hr.ErrTemplateInvalid().WithDetail("templateId", "required")
	}
	if req.To == "" {
		return hr.ErrTemplateInvalid().WithDetail("to", "required")
	}
	return s.hr.SendMail(ctx, req)
}
