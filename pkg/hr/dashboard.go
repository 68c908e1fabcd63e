package hr

// DashboardStats son los agregados que consume la pantalla principal.
// Se leen tal cual del endpoint de estadísticas del backend.
type DashboardStats struct {
	TotalAccounts     int            `json:"totalAccounts"`
	TotalDepartments  int            `json:"totalDepartments"`
	ActiveCampaigns   int            `json:"activeCampaigns"`
	OpenPositions     int            `json:"openPositions"`
	TotalApplicants   int            `json:"totalApplicants"`
	ApplicantsByState map[string]int `json:"applicantsByState,omitempty"`
	PendingOnboards   int            `json:"pendingOnboards"`
	InterviewsToday   int            `json:"interviewsToday"`
}
