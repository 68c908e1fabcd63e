package boardsrv

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentgate/talentgate/pkg/errx"
	"github.com/talentgate/talentgate/pkg/hr"
)

func validOnboard() hr.CreateOnboardRequest {
	return hr.CreateOnboardRequest{
		ApplicantID:    "cv-1",
		OutcomeID:      "out-1",
		ProposedSalary: 95000,
		SalaryType:     hr.SalaryGross,
		StartDate:      day(2026, time.April, 1),
	}
}

func TestCreateOnboardNotifiesCandidate(t *testing.T) {
	var mail hr.SendMailRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /onboards", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, map[string]string{"id": "ob-1"})
	})
	mux.HandleFunc("POST /email-templates/send", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&mail)
		writeEnvelope(w, true)
	})

	svc := NewOnboardingService(newUpstream(t, mux))
	req := validOnboard()
	req.Notify = true
	req.TemplateID = "tpl-1"
	req.NotifyAddress = "minh@mail.com"

	id, result, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "ob-1", id.String())
	assert.Equal(t, []string{"create-onboard", "notify-candidate"}, result.Executed)
	assert.Equal(t, "minh@mail.com", mail.To)
	assert.Equal(t, "2026-04-01", mail.Variables["startDate"])
}

func TestCreateOnboardMailFailureIsWarning(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /onboards", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, map[string]string{"id": "ob-2"})
	})
	mux.HandleFunc("POST /email-templates/send", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusBadGateway, "mail relay down")
	})

	svc := NewOnboardingService(newUpstream(t, mux))
	req := validOnboard()
	req.Notify = true
	req.TemplateID = "tpl-1"
	req.NotifyAddress = "minh@mail.com"

	id, result, err := svc.Create(context.Background(), req)
	require.NoError(t, err, "the onboard request survives a failed notification")
	assert.Equal(t, "ob-2", id.String())
	require.True(t, result.HasWarnings())
	assert.Equal(t, "notify-candidate", result.Warnings[0].Step)
}

func TestTransitionRejectsIllegalMove(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /onboards/ob-3", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, hr.Onboard{ID: "ob-3", Status: hr.OnboardPending})
	})

	svc := NewOnboardingService(newUpstream(t, mux))
	err := svc.Transition(context.Background(), "ob-3", hr.OnboardCompleted)
	require.Error(t, err)

	e, ok := errx.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "ONBOARD_ILLEGAL_TRANSITION", e.Code)
	assert.Equal(t, "PENDING", e.Details["from"])
	assert.Equal(t, "COMPLETED", e.Details["to"])
}

func TestTransitionForwardsLegalMove(t *testing.T) {
	moved := false
	mux := http.NewServeMux()
	mux.HandleFunc("GET /onboards/ob-4", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, hr.Onboard{ID: "ob-4", Status: hr.OnboardApproved})
	})
	mux.HandleFunc("PUT /onboards/ob-4/status", func(w http.ResponseWriter, r *http.Request) {
		moved = true
		writeEnvelope(w, true)
	})

	svc := NewOnboardingService(newUpstream(t, mux))
	require.NoError(t, svc.Transition(context.Background(), "ob-4", hr.OnboardCompleted))
	assert.True(t, moved)
}
