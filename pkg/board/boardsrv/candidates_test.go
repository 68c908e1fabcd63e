package boardsrv

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentgate/talentgate/pkg/errx"
	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/ptrx"
)

func TestChangeStatusRejectsIllegalTransition(t *testing.T) {
	changed := false
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cv-applicants/cv-1", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, hr.Applicant{ID: "cv-1", FullName: "Minh Vo", Status: hr.ApplicantOnboarded})
	})
	mux.HandleFunc("PUT /cv-applicants/cv-1/status", func(w http.ResponseWriter, r *http.Request) {
		changed = true
	})

	svc := NewCandidateService(newUpstream(t, mux))
	err := svc.ChangeStatus(context.Background(), "cv-1", hr.ApplicantAccepted)
	require.Error(t, err)

	e, ok := errx.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "APPLICANT_ILLEGAL_TRANSITION", e.Code)
	assert.Equal(t, "Onboarded", e.Details["from"])
	assert.False(t, changed)
}

func TestChangeStatusForwardsLegalTransition(t *testing.T) {
	changed := false
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cv-applicants/cv-2", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, hr.Applicant{ID: "cv-2", Status: hr.ApplicantPending})
	})
	mux.HandleFunc("PUT /cv-applicants/cv-2/status", func(w http.ResponseWriter, r *http.Request) {
		changed = true
		writeEnvelope(w, true)
	})

	svc := NewCandidateService(newUpstream(t, mux))
	require.NoError(t, svc.ChangeStatus(context.Background(), "cv-2", hr.ApplicantAccepted))
	assert.True(t, changed)
}

func TestPipelineTracksFrontier(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cv-applicants/cv-3/interview-process", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, hr.InterviewProcess{
			ID:   "proc-1",
			Name: "Engineering Loop",
			Stages: []hr.InterviewStage{
				{ID: "s1", Name: "Screening", Result: ptrx.Bool(true)},
				{ID: "s2", Name: "Technical", Result: nil},
				{ID: "s3", Name: "Culture", Result: nil},
			},
		})
	})

	svc := NewCandidateService(newUpstream(t, mux))
	view, err := svc.Pipeline(context.Background(), "cv-3")
	require.NoError(t, err)
	require.Len(t, view.Nodes, 3)

	assert.Equal(t, hr.StageCompleted, view.Nodes[0].State)
	assert.Equal(t, hr.StageCurrent, view.Nodes[1].State)
	assert.Equal(t, hr.StagePending, view.Nodes[2].State)
	assert.True(t, view.Nodes[0].ConnectorColored)
	assert.False(t, view.Nodes[1].ConnectorColored)
}

func TestListFiltersByStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cv-applicants", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, []hr.Applicant{
			{ID: "cv-1", FullName: "Ana", Status: hr.ApplicantPending},
			{ID: "cv-2", FullName: "Bao", Status: hr.ApplicantAccepted},
		})
	})

	svc := NewCandidateService(newUpstream(t, mux))
	page, err := svc.List(context.Background(), CandidateQuery{Status: int(hr.ApplicantPending)})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Ana", page.Items[0].FullName)

	// -1 desactiva el filtro: 0 es un estado válido
	page, err = svc.List(context.Background(), CandidateQuery{Status: -1})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
}
