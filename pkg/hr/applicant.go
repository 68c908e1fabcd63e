package hr

import (
	"net/http"
	"time"

	"github.com/talentgate/talentgate/pkg/errx"
	"github.com/talentgate/talentgate/pkg/kernel"
)

// ============================================================================
// CV Applicant (Candidate)
// ============================================================================

// ApplicantStatus es el estado de ciclo de vida del candidato.
// Codificado 0-4 en el wire, igual que el backend.
type ApplicantStatus int

const (
	ApplicantPending   ApplicantStatus = 0
	ApplicantRejected  ApplicantStatus = 1
	ApplicantAccepted  ApplicantStatus = 2
	ApplicantFailed    ApplicantStatus = 3
	ApplicantOnboarded ApplicantStatus = 4
)

func (s ApplicantStatus) String() string {
	switch s {
	case ApplicantPending:
		return "Pending"
	case ApplicantRejected:
		return "Rejected"
	case ApplicantAccepted:
		return "Accepted"
	case ApplicantFailed:
		return "Failed"
	case ApplicantOnboarded:
		return "Onboarded"
	default:
		return "Unknown"
	}
}

// Terminal indica si el estado ya no admite transiciones
func (s ApplicantStatus) Terminal() bool {
	return s == ApplicantRejected || s == ApplicantOnboarded
}

// CanTransitionTo valida la transición de estado en el cliente antes de
// pedirla al backend
func (s ApplicantStatus) CanTransitionTo(next ApplicantStatus) bool {
	if s == next || s.Terminal() {
		return false
	}
	switch s {
	case ApplicantPending:
		return next == ApplicantRejected || next == ApplicantAccepted
	case ApplicantAccepted:
		return next == ApplicantFailed || next == ApplicantOnboarded || next == ApplicantRejected
	case ApplicantFailed:
		return next == ApplicantRejected
	default:
		return false
	}
}

// Applicant es una persona que aplicó a una vacante de campaña y se sigue a
// través de las etapas de entrevista
type Applicant struct {
	ID         kernel.ApplicantID  `json:"id"`
	PositionID kernel.PositionID   `json:"campaignPositionId"`
	FullName   string              `json:"fullName"`
	Email      string              `json:"email"`
	Phone      string              `json:"phone"`
	CVLink     string              `json:"cvLink"`
	Status     ApplicantStatus     `json:"status"`
	Schedules  []InterviewSchedule `json:"interviewSchedules,omitempty"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// SearchFields son los campos de búsqueda en los listados de candidatos
func (a *Applicant) SearchFields() []string {
	return []string{a.FullName, a.Email, a.Phone}
}

// ============================================================================
// Service DTOs
// ============================================================================

type CreateApplicantRequest struct {
	PositionID kernel.PositionID `json:"campaignPositionId"`
	FullName   string            `json:"fullName"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	CVLink     string            `json:"cvLink"`
}

func (r CreateApplicantRequest) Validate() error {
	e := ErrApplicantInvalid()
	ok := true
	if r.PositionID.IsZero() {
		e.WithDetail("campaignPositionId", "required")
		ok = false
	}
	if r.FullName == "" {
		e.WithDetail("fullName", "required")
		ok = false
	}
	if r.Email == "" {
		e.WithDetail("email", "required")
		ok = false
	}
	if ok {
		return nil
	}
	return e
}

type ChangeApplicantStatusRequest struct {
	Status ApplicantStatus `json:"status"`
}

// ============================================================================
// Error Registry
// ============================================================================

var applicantErrors = errx.NewRegistry("APPLICANT")

var (
	CodeApplicantNotFound   = applicantErrors.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Applicant not found")
	CodeApplicantInvalid    = applicantErrors.Register("INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid applicant data")
	CodeApplicantTransition = applicantErrors.Register("ILLEGAL_TRANSITION", errx.TypeBusiness, http.StatusConflict, "Illegal applicant status transition")
)

func ErrApplicantNotFound() *errx.Error { return applicantErrors.New(CodeApplicantNotFound) }
func ErrApplicantInvalid() *errx.Error  { return applicantErrors.New(CodeApplicantInvalid) }
func ErrApplicantTransition() *errx.Error {
	return applicantErrors.New(CodeApplicantTransition)
}
