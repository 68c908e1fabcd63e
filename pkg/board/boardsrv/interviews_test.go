package boardsrv

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentgate/talentgate/pkg/errx"
	"github.com/talentgate/talentgate/pkg/hr"
	"github.com/talentgate/talentgate/pkg/kernel"
)

func TestBookRejectsPastStart(t *testing.T) {
	mux := http.NewServeMux()
	svc := NewInterviewService(newUpstream(t, mux), 30*time.Minute)
	svc.now = fixedNow(day(2026, time.March, 10))

	_, err := svc.Book(context.Background(), hr.BookScheduleRequest{
		ApplicantID:  "cv-1",
		StageID:      "s1",
		StartTime:    day(2026, time.March, 9),
		EndTime:      day(2026, time.March, 9).Add(time.Hour),
		Interviewers: []kernel.AccountID{"int-1"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid interview schedule data")
}

func TestRecordOutcomeWithinWindow(t *testing.T) {
	recorded := false
	start := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /interview-schedules/sch-1", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, hr.InterviewSchedule{
			ID:        "sch-1",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		})
	})
	mux.HandleFunc("POST /interview-schedules/sch-1/outcome", func(w http.ResponseWriter, r *http.Request) {
		recorded = true
		writeEnvelope(w, true)
	})

	svc := NewInterviewService(newUpstream(t, mux), 30*time.Minute)
	svc.now = fixedNow(start.Add(time.Hour + 10*time.Minute))

	err := svc.RecordOutcome(context.Background(), "sch-1", hr.RecordOutcomeRequest{
		Result:   hr.OutcomePass,
		Feedback: "strong candidate",
	})
	require.NoError(t, err)
	assert.True(t, recorded)
}

func TestRecordOutcomeAfterWindowCloses(t *testing.T) {
	start := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /interview-schedules/sch-2", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, hr.InterviewSchedule{
			ID:        "sch-2",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		})
	})

	svc := NewInterviewService(newUpstream(t, mux), 30*time.Minute)
	svc.now = fixedNow(start.Add(3 * time.Hour))

	err := svc.RecordOutcome(context.Background(), "sch-2", hr.RecordOutcomeRequest{Result: hr.OutcomeFail})
	require.Error(t, err)

	e, ok := errx.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "INTERVIEW_OUTCOME_INVALID", e.Code)
}

func TestRecordOutcomeBeforeInterviewStarts(t *testing.T) {
	start := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /interview-schedules/sch-3", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, hr.InterviewSchedule{ID: "sch-3", StartTime: start, EndTime: start.Add(time.Hour)})
	})

	svc := NewInterviewService(newUpstream(t, mux), 30*time.Minute)
	svc.now = fixedNow(start.Add(-time.Hour))

	err := svc.RecordOutcome(context.Background(), "sch-3", hr.RecordOutcomeRequest{Result: hr.OutcomePass})
	require.Error(t, err)
}
