package hrclient

import (
	"context"
	"fmt"

	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/kernel"
)

func (c *Client) ListTemplates(ctx context.Context) ([]hr.EmailTemplate, error) {
	var templates []hr.EmailTemplate
	if err := c.get(ctx, "/email-templates", &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (c *Client) GetTemplate(ctx context.Context, id kernel.TemplateID) (*hr.EmailTemplate, error) {
	var template hr.EmailTemplate
	if err := c.get(ctx, fmt.Sprintf("/email-templates/%s", id), &template); err != nil {
		return nil, err
	}
	return &template, nil
}

func (c *Client) CreateTemplate(ctx context.Context, req hr.SaveTemplateRequest) (kernel.TemplateID, error) {
	id, err := c.postCreated(ctx, "/email-templates", req)
	if err != nil {
		return "", err
	}
	return kernel.TemplateID(id), nil
}

func (c *Client) UpdateTemplate(ctx context.Context, id kernel.TemplateID, req hr.SaveTemplateRequest) error {
	return c.put(ctx, fmt.Sprintf("/email-templates/%s", id), req, nil)
}

func (c *Client) DeleteTemplate(ctx context.Context, id kernel.TemplateID) error {
	return c.delete(ctx, fmt.Sprintf("/email-templates/%s", id))
}

// SendMail dispara el correo con el template; el render lo hace el backend
func (c *Client) SendMail(ctx context.Context, req hr.SendMailRequest) error {
	return c.post(ctx, "/email-templates/send", req, nil)
}
