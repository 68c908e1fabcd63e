package hr

import (
	"net/http"
	"time"

	"github.com/talentgate/talentgate/pkg/errx"
	"github.com/talentgate/talentgate/pkg/kernel"
)

// EmailTemplate es una plantilla de correo administrada en el backend
type EmailTemplate struct {
	ID           kernel.TemplateID `json:"id"`
	Name         string            `json:"name"`
	Subject      string            `json:"subject"`
	Body         string            `json:"body"`
	Placeholders []string          `json:"placeholders,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// SearchFields son los campos de búsqueda del listado de plantillas
func (t *EmailTemplate) SearchFields() []string {
	return []string{t.Name, t.Subject}
}

type SaveTemplateRequest struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (r SaveTemplateRequest) Validate() error {
	e := ErrTemplateInvalid()
	ok := true
	if r.Name == "" {
		e.WithDetail("name", "required")
		ok = false
	}
	if r.Subject == "" {
		e.WithDetail("subject", "required")
		ok = false
	}
	if ok {
		return nil
	}
	return e
}

// SendMailRequest dispara el envío de un correo basado en plantilla.
// El envío real lo hace el backend.
type SendMailRequest struct {
	TemplateID kernel.TemplateID `json:"templateId"`
	To         string            `json:"to"`
	Variables  map[string]string `json:"variables,omitempty"`
}

var templateErrors = errx.NewRegistry("TEMPLATE")

var (
	CodeTemplateNotFound = templateErrors.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Email template not found")
	CodeTemplateInvalid  = templateErrors.Register("INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid email template data")
)

func ErrTemplateNotFound() *errx.Error { return templateErrors.New(CodeTemplateNotFound) }
func ErrTemplateInvalid() *errx.Error  { return templateErrors.New(CodeTemplateInvalid) }
