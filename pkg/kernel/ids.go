package kernel

// Identificadores tipados para las entidades del dominio HR.
// El backend remoto es el dueño de los IDs; aquí solo se transportan.

type AccountID string

func NewAccountID(s string) AccountID { return AccountID(s) }
func (id AccountID) String() string   { return string(id) }
func (id AccountID) IsZero() bool     { return id == "" }

type DepartmentID string

func NewDepartmentID(s string) DepartmentID { return DepartmentID(s) }
func (id DepartmentID) String() string      { return string(id) }
func (id DepartmentID) IsZero() bool        { return id == "" }

type CampaignID string

func NewCampaignID(s string) CampaignID { return CampaignID(s) }
func (id CampaignID) String() string    { return string(id) }
func (id CampaignID) IsZero() bool      { return id == "" }

type PositionID string

func NewPositionID(s string) PositionID { return PositionID(s) }
func (id PositionID) String() string    { return string(id) }
func (id PositionID) IsZero() bool      { return id == "" }

type ApplicantID string

func NewApplicantID(s string) ApplicantID { return ApplicantID(s) }
func (id ApplicantID) String() string     { return string(id) }
func (id ApplicantID) IsZero() bool       { return id == "" }

type ProcessID string

func NewProcessID(s string) ProcessID { return ProcessID(s) }
func (id ProcessID) String() string   { return string(id) }
func (id ProcessID) IsZero() bool     { return id == "" }

type StageID string

func NewStageID(s string) StageID { return StageID(s) }
func (id StageID) String() string { return string(id) }
func (id StageID) IsZero() bool   { return id == "" }

type ScheduleID string

func NewScheduleID(s string) ScheduleID { return ScheduleID(s) }
func (id ScheduleID) String() string    { return string(id) }
func (id ScheduleID) IsZero() bool      { return id == "" }

type OutcomeID string

func NewOutcomeID(s string) OutcomeID { return OutcomeID(s) }
func (id OutcomeID) String() string   { return string(id) }
func (id OutcomeID) IsZero() bool     { return id == "" }

type OnboardID string

func NewOnboardID(s string) OnboardID { return OnboardID(s) }
func (id OnboardID) String() string   { return string(id) }
func (id OnboardID) IsZero() bool     { return id == "" }

type TemplateID string

func NewTemplateID(s string) TemplateID { return TemplateID(s) }
func (id TemplateID) String() string    { return string(id) }
func (id TemplateID) IsZero() bool      { return id == "" }
