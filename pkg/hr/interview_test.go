package hr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentgate/talentgate/pkg/ptrx"
)

func stages(results ...*bool) []InterviewStage {
	out := make([]InterviewStage, len(results))
	for i, r := range results {
		out[i] = InterviewStage{Order: i, Result: r}
	}
	return out
}

func TestTrackStagesFrontier(t *testing.T) {
	// [true, nil, nil]: la etapa 1 es la actual, la 2 queda pendiente
	nodes := TrackStages(stages(ptrx.Bool(true), nil, nil))
	require.Len(t, nodes, 3)
	assert.Equal(t, StageCompleted, nodes[0].State)
	assert.Equal(t, StageCurrent, nodes[1].State)
	assert.Equal(t, StagePending, nodes[2].State)
}

func TestTrackStagesFailureIsTerminalForStylingOnly(t *testing.T) {
	// [true, false, nil]: la etapa 1 reprueba, la 2 NO se auto-reprueba
	nodes := TrackStages(stages(ptrx.Bool(true), ptrx.Bool(false), nil))
	require.Len(t, nodes, 3)
	assert.Equal(t, StageCompleted, nodes[0].State)
	assert.Equal(t, StageFailed, nodes[1].State)
	assert.Equal(t, StagePending, nodes[2].State)

	// tras una reprobada no queda ninguna etapa actual
	for _, n := range nodes {
		assert.NotEqual(t, StageCurrent, n.State)
	}
}

func TestTrackStagesFirstStageIsFrontier(t *testing.T) {
	nodes := TrackStages(stages(nil, nil))
	assert.Equal(t, StageCurrent, nodes[0].State)
	assert.Equal(t, StagePending, nodes[1].State)
}

func TestTrackStagesAllResolved(t *testing.T) {
	nodes := TrackStages(stages(ptrx.Bool(true), ptrx.Bool(true), ptrx.Bool(false)))
	assert.Equal(t, StageCompleted, nodes[0].State)
	assert.Equal(t, StageCompleted, nodes[1].State)
	assert.Equal(t, StageFailed, nodes[2].State)
}

func TestTrackStagesConnectors(t *testing.T) {
	nodes := TrackStages(stages(ptrx.Bool(true), nil, nil))
	assert.True(t, nodes[0].ConnectorColored, "resolved stage colors its connector")
	assert.False(t, nodes[1].ConnectorColored, "connector past the frontier stays neutral")
	assert.False(t, nodes[2].ConnectorColored, "last node has no outgoing connector")

	nodes = TrackStages(stages(ptrx.Bool(true), ptrx.Bool(false), nil))
	assert.True(t, nodes[0].ConnectorColored)
	assert.True(t, nodes[1].ConnectorColored, "failed stage still colors its connector")
}

func TestTrackStagesEmpty(t *testing.T) {
	assert.Nil(t, TrackStages(nil))
}

func TestOutcomeStageResult(t *testing.T) {
	pass := &InterviewOutcome{Result: OutcomePass}
	require.NotNil(t, pass.StageResult())
	assert.True(t, *pass.StageResult())

	fail := &InterviewOutcome{Result: OutcomeFail}
	require.NotNil(t, fail.StageResult())
	assert.False(t, *fail.StageResult())

	pending := &InterviewOutcome{Result: OutcomePending}
	assert.Nil(t, pending.StageResult())
}

func TestApplicantStatusTransitions(t *testing.T) {
	assert.True(t, ApplicantPending.CanTransitionTo(ApplicantAccepted))
	assert.True(t, ApplicantPending.CanTransitionTo(ApplicantRejected))
	assert.False(t, ApplicantPending.CanTransitionTo(ApplicantOnboarded))

	assert.True(t, ApplicantAccepted.CanTransitionTo(ApplicantOnboarded))
	assert.True(t, ApplicantAccepted.CanTransitionTo(ApplicantFailed))

	assert.False(t, ApplicantRejected.CanTransitionTo(ApplicantPending), "rejected is terminal")
	assert.False(t, ApplicantOnboarded.CanTransitionTo(ApplicantFailed), "onboarded is terminal")
}

func TestOnboardStatusTransitions(t *testing.T) {
	assert.True(t, OnboardPending.CanTransitionTo(OnboardApproved))
	assert.True(t, OnboardPending.CanTransitionTo(OnboardRejected))
	assert.True(t, OnboardApproved.CanTransitionTo(OnboardCompleted))
	assert.False(t, OnboardRejected.CanTransitionTo(OnboardApproved))
	assert.False(t, OnboardCompleted.CanTransitionTo(OnboardCancelled))
}
