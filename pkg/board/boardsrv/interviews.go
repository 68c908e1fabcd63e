package boardsrv

import (
	"context"
	"time"

	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/hrclient"
	"github.com/talentgate/talentgate/pkg/kernel"
)

// InterviewService administra procesos, agendas y resultados de entrevista
type InterviewService struct {
	hr             *hrclient.Client
	feedbackWindow time.Duration
	now            func() time.Time
}

// NewInterviewService crea el servicio; feedbackWindow limita cuánto tiempo
// después de terminada la entrevista se acepta registrar el resultado
func NewInterviewService(hr *hrclient.Client, feedbackWindow time.Duration) *InterviewService {
	return &InterviewService{
		hr:             hr,
		feedbackWindow: feedbackWindow,
		now:            time.Now,
	}
}

func (s *InterviewService) ListProcesses(ctx context.Context, departmentID kernel.DepartmentID) ([]hr.InterviewProcess, error) {
	return s.hr.ListProcesses(ctx, departmentID)
}

func (s *InterviewService) GetProcess(ctx context.Context, id kernel.ProcessID) (*hr.InterviewProcess, error) {
	return s.hr.GetProcess(ctx, id)
}

func (s *InterviewService) CreateProcess(ctx context.Context, req hr.CreateProcessRequest) (kernel.ProcessID, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.hr.CreateProcess(ctx, req)
}

func (s *InterviewService) DeleteProcess(ctx context.Context, id kernel.ProcessID) error {
	return s.hr.DeleteProcess(ctx, id)
}

func (s *InterviewService) Schedules(ctx context.Context, applicantID kernel.ApplicantID) ([]hr.InterviewSchedule, error) {
	return s.hr.ListSchedules(ctx, applicantID)
}

// Book agenda una entrevista. No se agenda en el pasado.
func (s *InterviewService) Book(ctx context.Context, req hr.BookScheduleRequest) (kernel.ScheduleID, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if req.StartTime.Before(s.now()) {
		return "", hr.ErrScheduleInvalid().WithDetail("startTime", "cannot schedule in the past")
	}
	return s.hr.BookSchedule(ctx, req)
}

func (s *InterviewService) Outcome(ctx context.Context, scheduleID kernel.ScheduleID) (*hr.InterviewOutcome, error) {
	return s.hr.GetOutcome(ctx, scheduleID)
}

// RecordOutcome registra el resultado de una entrevista ya realizada.
// Solo se acepta una vez iniciada la entrevista y dentro de la ventana de
// feedback posterior a su fin; pasada la ventana el resultado queda a cargo
// del flujo administrativo del backend.
func (s *InterviewService) RecordOutcome(ctx context.Context, scheduleID kernel.ScheduleID, req hr.RecordOutcomeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	schedule, err := s.hr.GetSchedule(ctx, scheduleID)
	if err != nil {
		return err
	}

	now := s.now()
	if now.Before(schedule.StartTime) {
		return hr.ErrOutcomeInvalid().WithDetail("scheduleId", "interview has not started yet")
	}
	if s.feedbackWindow > 0 && now.After(schedule.EndTime.Add(s.feedbackWindow)) {
		return hr.ErrOutcomeInvalid().
			WithDetail("scheduleId", "feedback window has closed").
			WithDetail("closedAt", schedule.EndTime.Add(s.feedbackWindow))
	}

	return s.hr.RecordOutcome(ctx, scheduleID, req)
}
