package hr

import (
	"net/http"
	"time"

	"github.com/talentgate/talentgate/pkg/errx"
	"github.com/talentgate/talentgate/pkg/kernel"
)

// ============================================================================
// Onboarding
// ============================================================================

// OnboardStatus es el estado del flujo de aprobación post-oferta
type OnboardStatus string

const (
	OnboardPending   OnboardStatus = "PENDING"
	OnboardApproved  OnboardStatus = "APPROVED"
	OnboardRejected  OnboardStatus = "REJECTED"
	OnboardCancelled OnboardStatus = "CANCELLED"
	OnboardCompleted OnboardStatus = "COMPLETED"
)

// SalaryType clasifica la propuesta salarial
type SalaryType string

const (
	SalaryGross   SalaryType = "GROSS"
	SalaryNet     SalaryType = "NET"
	SalaryNegotia SalaryType = "NEGOTIABLE"
)

// Onboard es la solicitud de onboarding de un candidato con oferta,
// vinculada al outcome de su última entrevista
type Onboard struct {
	ID             kernel.OnboardID   `json:"id"`
	ApplicantID    kernel.ApplicantID `json:"cvApplicantId"`
	OutcomeID      kernel.OutcomeID   `json:"interviewOutcomeId"`
	ProposedSalary float64            `json:"proposedSalary"`
	SalaryType     SalaryType         `json:"salaryType"`
	StartDate      time.Time          `json:"startDate"`
	Status         OnboardStatus      `json:"status"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// CanTransitionTo valida las transiciones del flujo de aprobación
func (s OnboardStatus) CanTransitionTo(next OnboardStatus) bool {
	switch s {
	case OnboardPending:
		return next == OnboardApproved || next == OnboardRejected || next == OnboardCancelled
	case OnboardApproved:
		return next == OnboardCompleted || next == OnboardCancelled
	default:
		return false
	}
}

// ============================================================================
// Service DTOs
// ============================================================================

type CreateOnboardRequest struct {
	ApplicantID    kernel.ApplicantID `json:"cvApplicantId"`
	OutcomeID      kernel.OutcomeID   `json:"interviewOutcomeId"`
	ProposedSalary float64            `json:"proposedSalary"`
	SalaryType     SalaryType         `json:"salaryType"`
	StartDate      time.Time          `json:"startDate"`
	// Notify dispara el paso best-effort de notificación tras crear
	Notify        bool              `json:"notify"`
	TemplateID    kernel.TemplateID `json:"templateId,omitempty"`
	NotifyAddress string            `json:"notifyAddress,omitempty"`
}

func (r CreateOnboardRequest) Validate() error {
	e := ErrOnboardInvalid()
	ok := true
	if r.ApplicantID.IsZero() {
		e.WithDetail("cvApplicantId", "required")
		ok = false
	}
	if r.ProposedSalary <= 0 {
		e.WithDetail("proposedSalary", "must be positive")
		ok = false
	}
	if r.StartDate.IsZero() {
		e.WithDetail("startDate", "required")
		ok = false
	}
	if r.Notify && r.NotifyAddress == "" {
		e.WithDetail("notifyAddress", "required when notify is set")
		ok = false
	}
	if ok {
		return nil
	}
	return e
}

// ============================================================================
// Error Registry
// ============================================================================

var onboardErrors = errx.NewRegistry("ONBOARD")

var (
	CodeOnboardNotFound   = onboardErrors.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Onboarding request not found")
	CodeOnboardInvalid    = onboardErrors.Register("INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid onboarding data")
	CodeOnboardTransition = onboardErrors.Register("ILLEGAL_TRANSITION", errx.TypeBusiness, http.StatusConflict, "Illegal onboarding status transition")
)

func ErrOnboardNotFound() *errx.Error   { return onboardErrors.New(CodeOnboardNotFound) }
func ErrOnboardInvalid() *errx.Error    { return onboardErrors.New(CodeOnboardInvalid) }
func ErrOnboardTransition() *errx.Error { return onboardErrors.New(CodeOnboardTransition) }
