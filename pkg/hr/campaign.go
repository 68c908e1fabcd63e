package hr

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/talentgate/talentgate/pkg/errx"
	"github.com/talentgate/talentgate/pkg/kernel"
)

// ============================================================================
// Campaign Entity
// ============================================================================

// Campaign es una campaña de reclutamiento acotada en el tiempo.
// El invariante end >= start lo garantiza el backend; aquí se asume.
type Campaign struct {
	ID          kernel.CampaignID  `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	StartDate   time.Time          `json:"startDate"`
	EndDate     time.Time          `json:"endDate"`
	Positions   []CampaignPosition `json:"campaignPositions,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// CampaignPosition es una vacante dentro de una campaña, ligada a un
// departamento, con cupos y criterios de calificación
type CampaignPosition struct {
	ID           kernel.PositionID   `json:"id"`
	CampaignID   kernel.CampaignID   `json:"campaignId"`
	DepartmentID kernel.DepartmentID `json:"departmentId"`
	Title        string              `json:"title"`
	TotalSlot    int                 `json:"totalSlot"`
	Criteria     []PositionCriterion `json:"criteriaDetails,omitempty"`
}

// PositionCriterion es un requisito tipado clave/valor de una vacante,
// agrupado por índice para renderizar bloques de criterios
type PositionCriterion struct {
	GroupIndex int    `json:"groupIndex"`
	Key        string `json:"key"`
	Value      string `json:"value"`
}

// GroupedCriteria agrupa los criterios por GroupIndex, en orden ascendente
func (p *CampaignPosition) GroupedCriteria() [][]PositionCriterion {
	if len(p.Criteria) == 0 {
		return nil
	}
	byIndex := make(map[int][]PositionCriterion)
	indexes := make([]int, 0)
	for _, c := range p.Criteria {
		if _, seen := byIndex[c.GroupIndex]; !seen {
			indexes = append(indexes, c.GroupIndex)
		}
		byIndex[c.GroupIndex] = append(byIndex[c.GroupIndex], c)
	}
	sort.Ints(indexes)
	groups := make([][]PositionCriterion, 0, len(indexes))
	for _, i := range indexes {
		groups = append(groups, byIndex[i])
	}
	return groups
}

// ============================================================================
// Campaign Status Derivation
// ============================================================================

// CampaignPhase es la fase del ciclo de vida derivada de las fechas
type CampaignPhase string

const (
	PhaseUpcoming  CampaignPhase = "UPCOMING"
	PhaseActive    CampaignPhase = "ACTIVE"
	PhaseEndsToday CampaignPhase = "ENDS_TODAY"
	PhaseEnded     CampaignPhase = "ENDED"
)

// Tone es la intención visual asociada al estado de la campaña
type Tone string

const (
	ToneUrgent  Tone = "urgent"  // rojo: terminó o termina hoy
	TonePending Tone = "pending" // amarillo: aún no empieza
	ToneWarning Tone = "warning" // naranja: quedan <= 2 días
	ToneActive  Tone = "active"  // verde: en curso
)

// CampaignStatus es el estado derivado que consume la vista
type CampaignStatus struct {
	Phase    CampaignPhase `json:"phase"`
	Label    string        `json:"label"`
	Tone     Tone          `json:"tone"`
	DaysLeft int           `json:"daysLeft"`
}

// CanAddPosition indica si la campaña admite crear vacantes:
// cualquier fase salvo terminada
func (s CampaignStatus) CanAddPosition() bool {
	return s.Phase != PhaseEnded
}

// StatusOn deriva el estado de la campaña para una fecha dada.
// Las fechas se normalizan a medianoche local para que la hora del día
// no corra el cálculo de días. El reloj del cliente se toma como verdad.
func (c *Campaign) StatusOn(today time.Time) CampaignStatus {
	start := midnight(c.StartDate)
	end := midnight(c.EndDate)
	day := midnight(today)

	switch {
	case day.Before(start):
		return CampaignStatus{
			Phase:    PhaseUpcoming,
			Label:    "Upcoming",
			Tone:     TonePending,
			DaysLeft: wholeDays(day, end),
		}
	case day.After(end):
		return CampaignStatus{
			Phase: PhaseEnded,
			Label: "Ended",
			Tone:  ToneUrgent,
		}
	case day.Equal(end):
		return CampaignStatus{
			Phase: PhaseEndsToday,
			Label: "Ends today",
			Tone:  ToneUrgent,
		}
	default:
		left := wholeDays(day, end)
		tone := ToneActive
		if left <= 2 {
			tone = ToneWarning
		}
		label := fmt.Sprintf("%d days left", left)
		if left == 1 {
			label = "1 day left"
		}
		return CampaignStatus{
			Phase:    PhaseActive,
			Label:    label,
			Tone:     tone,
			DaysLeft: left,
		}
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// wholeDays cuenta días completos entre dos medianoche
func wholeDays(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}

// ============================================================================
// Service DTOs
// ============================================================================

type CreateCampaignRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

func (r CreateCampaignRequest) Validate() error {
	e := ErrCampaignInvalid()
	ok := true
	if r.Name == "" {
		e.WithDetail("name", "required")
		ok = false
	}
	if r.StartDate.IsZero() {
		e.WithDetail("startDate", "required")
		ok = false
	}
	if r.EndDate.IsZero() {
		e.WithDetail("endDate", "required")
		ok = false
	}
	if ok {
		return nil
	}
	return e
}

type CreatePositionRequest struct {
	DepartmentID kernel.DepartmentID `json:"departmentId"`
	Title        string              `json:"title"`
	TotalSlot    int                 `json:"totalSlot"`
	Criteria     []PositionCriterion `json:"criteriaDetails,omitempty"`
}

func (r CreatePositionRequest) Validate() error {
	e := ErrPositionInvalid()
	ok := true
	if r.DepartmentID.IsZero() {
		e.WithDetail("departmentId", "required")
		ok = false
	}
	if r.Title == "" {
		e.WithDetail("title", "required")
		ok = false
	}
	if r.TotalSlot < 1 {
		e.WithDetail("totalSlot", "must be at least 1")
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

var campaignErrors = errx.NewRegistry("CAMPAIGN")

var (
	CodeCampaignNotFound = campaignErrors.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Campaign not found")
	CodeCampaignEnded    = campaignErrors.Register("ENDED", errx.TypeBusiness, http.StatusConflict, "Campaign has ended; positions can no longer be added")
	CodeCampaignInvalid  = campaignErrors.Register("INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid campaign data")
	CodePositionInvalid  = campaignErrors.Register("POSITION_INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid campaign position data")
)

func ErrCampaignNotFound() *errx.Error { return campaignErrors.New(CodeCampaignNotFound) }
func ErrCampaignEnded() *errx.Error    { return campaignErrors.New(CodeCampaignEnded) }
func ErrCampaignInvalid() *errx.Error  { return campaignErrors.New(CodeCampaignInvalid) }
func ErrPositionInvalid() *errx.Error  { return campaignErrors.New(CodePositionInvalid) }
