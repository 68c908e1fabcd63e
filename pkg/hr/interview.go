package hr

import (
	"net/http"
	"time"

	"github.com/talentgate/talentgate/pkg/errx"
	"github.com/talentgate/talentgate/pkg/kernel"
)

// ============================================================================
// Interview Process / Stage / Schedule / Outcome
// ============================================================================

// InterviewProcess es la plantilla ordenada de etapas de entrevista de un
// departamento
type InterviewProcess struct {
	ID           kernel.ProcessID    `json:"id"`
	DepartmentID kernel.DepartmentID `json:"departmentId"`
	Name         string              `json:"name"`
	Stages       []InterviewStage    `json:"stages"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// InterviewStage es una etapa dentro de un proceso. Result es tri-estado:
// true completada, false reprobada (terminal), nil aún sin resolver.
type InterviewStage struct {
	ID          kernel.StageID `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Order       int            `json:"order"`
	Duration    time.Duration  `json:"duration"`
	Result      *bool          `json:"isCompleted"`
}

// InterviewSchedule es una entrevista concreta agendada para un candidato en
// una etapa dada
type InterviewSchedule struct {
	ID           kernel.ScheduleID  `json:"id"`
	ApplicantID  kernel.ApplicantID `json:"cvApplicantId"`
	StageID      kernel.StageID     `json:"interviewStageId"`
	StartTime    time.Time          `json:"startTime"`
	EndTime      time.Time          `json:"endTime"`
	Interviewers []kernel.AccountID `json:"interviewerIds"`
	Notes        string             `json:"notes"`
	Status       string             `json:"status"`
	Round        int                `json:"round"`
}

// OutcomeResult es el resultado tri-estado de una entrevista realizada
type OutcomeResult string

const (
	OutcomePending OutcomeResult = "PENDING"
	OutcomePass    OutcomeResult = "PASS"
	OutcomeFail    OutcomeResult = "FAIL"
)

// InterviewOutcome es el resultado registrado de un schedule
type InterviewOutcome struct {
	ID         kernel.OutcomeID  `json:"id"`
	ScheduleID kernel.ScheduleID `json:"interviewScheduleId"`
	Result     OutcomeResult     `json:"result"`
	Feedback   string            `json:"feedback"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// StageResult traduce el outcome al tri-estado que consume el tracker
func (o *InterviewOutcome) StageResult() *bool {
	switch o.Result {
	case OutcomePass:
		v := true
		return &v
	case OutcomeFail:
		v := false
		return &v
	default:
		return nil
	}
}

// ============================================================================
// Stage Tracker
// ============================================================================

// StageState es el estado visual de un nodo del pipeline
type StageState string

const (
	StageCompleted StageState = "COMPLETED"
	StageFailed    StageState = "FAILED"
	StageCurrent   StageState = "CURRENT"
	StagePending   StageState = "PENDING"
)

// StageNode es un nodo renderizable del tracker. ConnectorColored aplica al
// conector que une este nodo con el siguiente.
type StageNode struct {
	Stage            InterviewStage `json:"stage"`
	State            StageState     `json:"state"`
	ConnectorColored bool           `json:"connectorColored"`
}

// TrackStages calcula el estado de cada nodo del pipeline de entrevistas.
//
// La etapa "actual" es la frontera de progreso: la primera con resultado nil
// cuya etapa anterior quedó completada; el índice 0 cuenta como frontera si
// está sin resolver. Un false es terminal: tras una reprobada no hay etapa
// actual y las posteriores quedan Pending, nunca se auto-reprueban.
func TrackStages(stages []InterviewStage) []StageNode {
	if len(stages) == 0 {
		return nil
	}

	frontier := -1
	for i, s := range stages {
		if s.Result != nil {
			continue
		}
		if i == 0 || (stages[i-1].Result != nil && *stages[i-1].Result) {
			frontier = i
		}
		break
	}

	nodes := make([]StageNode, len(stages))
	for i, s := range stages {
		var state StageState
		switch {
		case s.Result != nil && *s.Result:
			state = StageCompleted
		case s.Result != nil:
			state = StageFailed
		case i == frontier:
			state = StageCurrent
		default:
			state = StagePending
		}

		colored := false
		if i < len(stages)-1 {
			colored = s.Result != nil || (frontier >= 0 && i < frontier)
		}

		nodes[i] = StageNode{
			Stage:            s,
			State:            state,
			ConnectorColored: colored,
		}
	}
	return nodes
}

// ============================================================================
// Service DTOs
// ============================================================================

type CreateProcessRequest struct {
	DepartmentID kernel.DepartmentID  `json:"departmentId"`
	Name         string               `json:"name"`
	Stages       []CreateStageRequest `json:"stages"`
}

type CreateStageRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Order       int           `json:"order"`
	Duration    time.Duration `json:"duration"`
}

func (r CreateProcessRequest) Validate() error {
	e := ErrProcessInvalid()
	ok := true
	if r.DepartmentID.IsZero() {
		e.WithDetail("departmentId", "required")
		ok = false
	}
	if r.Name == "" {
		e.WithDetail("name", "required")
		ok = false
	}
	if len(r.Stages) == 0 {
		e.WithDetail("stages", "at least one stage is required")
		ok = false
	}
	if ok {
		return nil
	}
	return e
}

type BookScheduleRequest struct {
	ApplicantID  kernel.ApplicantID `json:"cvApplicantId"`
	StageID      kernel.StageID     `json:"interviewStageId"`
	StartTime    time.Time          `json:"startTime"`
	EndTime      time.Time          `json:"endTime"`
	Interviewers []kernel.AccountID `json:"interviewerIds"`
	Notes        string             `json:"notes"`
}

func (r BookScheduleRequest) Validate() error {
	e := ErrScheduleInvalid()
	ok := true
	if r.ApplicantID.IsZero() {
		e.WithDetail("cvApplicantId", "required")
		ok = false
	}
	if r.StageID.IsZero() {
		e.WithDetail("interviewStageId", "required")
		ok = false
	}
	if !r.EndTime.After(r.StartTime) {
		e.WithDetail("endTime", "must be after startTime")
		ok = false
	}
	if len(r.Interviewers) == 0 {
		e.WithDetail("interviewerIds", "at least one interviewer is required")
		ok = false
	}
	if ok {
		return nil
	}
	return e
}

type RecordOutcomeRequest struct {
	Result   OutcomeResult `json:"result"`
	Feedback string        `json:"feedback"`
}

func (r RecordOutcomeRequest) Validate() error {
	switch r.Result {
	case OutcomePending, OutcomePass, OutcomeFail:
		return nil
	default:
		return ErrOutcomeInvalid().WithDetail("result", "must be PENDING, PASS or FAIL")
	}
}

// ============================================================================
// Error Registry
// ============================================================================

var interviewErrors = errx.NewRegistry("INTERVIEW")

var (
	CodeProcessNotFound  = interviewErrors.Register("PROCESS_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Interview process not found")
	CodeProcessInvalid   = interviewErrors.Register("PROCESS_INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid interview process data")
	CodeScheduleNotFound = interviewErrors.Register("SCHEDULE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Interview schedule not found")
	CodeScheduleInvalid  = interviewErrors.Register("SCHEDULE_INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid interview schedule data")
	CodeOutcomeInvalid   = interviewErrors.Register("OUTCOME_INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid interview outcome data")
)

func ErrProcessNotFound() *errx.Error  { return interviewErrors.New(CodeProcessNotFound) }
func ErrProcessInvalid() *errx.Error   { return interviewErrors.New(CodeProcessInvalid) }
func ErrScheduleNotFound() *errx.Error { return interviewErrors.New(CodeScheduleNotFound) }
func ErrScheduleInvalid() *errx.Error  { return interviewErrors.New(CodeScheduleInvalid) }
func ErrOutcomeInvalid() *errx.Error   { return interviewErrors.New(CodeOutcomeInvalid) }
