package saga

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentgate/talentgate/pkg/errx"
)

func TestExecuteAllSteps(t *testing.T) {
	var order []string
	result, err := Execute(context.Background(),
		Step{Name: "create", Mode: Required, Run: func(ctx context.Context) error {
			order = append(order, "create")
			return nil
		}},
		Step{Name: "assign", Mode: BestEffort, Run: func(ctx context.Context) error {
			order = append(order, "assign")
			return nil
		}},
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"create", "assign"}, order)
	assert.Equal(t, []string{"create", "assign"}, result.Executed)
	assert.False(t, result.HasWarnings())
}

func TestRequiredFailureAbortsFlow(t *testing.T) {
	secondaryRan := false
	result, err := Execute(context.Background(),
		Step{Name: "create", Mode: Required, Run: func(ctx context.Context) error {
			return errors.New("upstream rejected the payload")
		}},
		Step{Name: "assign", Mode: BestEffort, Run: func(ctx context.Context) error {
			secondaryRan = true
			return nil
		}},
	)

	require.Error(t, err)
	assert.False(t, secondaryRan, "steps after a failed required step must not run")
	assert.Empty(t, result.Executed)

	e, ok := errx.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "create", e.Details["step"])
}

func TestBestEffortFailureContinues(t *testing.T) {
	result, err := Execute(context.Background(),
		Step{Name: "create", Mode: Required, Run: func(ctx context.Context) error {
			return nil
		}},
		Step{Name: "assign", Mode: BestEffort, Run: func(ctx context.Context) error {
			return errors.New("department service unavailable")
		}},
		Step{Name: "audit", Mode: BestEffort, Run: func(ctx context.Context) error {
			return nil
		}},
	)

	require.NoError(t, err, "best-effort failures never fail the flow")
	assert.Equal(t, []string{"create", "audit"}, result.Executed)
	require.True(t, result.HasWarnings())
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "assign", result.Warnings[0].Step)
	assert.Contains(t, result.WarningMessages()[0], "department service unavailable")
}

func TestErrxErrorsPassThrough(t *testing.T) {
	reg := errx.NewRegistry("TEST")
	code := reg.Register("BOOM", errx.TypeConflict, 409, "Already exists")

	_, err := Execute(context.Background(),
		Step{Name: "create", Mode: Required, Run: func(ctx context.Context) error {
			return reg.New(code)
		}},
	)

	e, ok := errx.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "TEST_BOOM", e.Code)
	assert.Equal(t, 409, e.HTTPStatus)
}

func TestCancelledContextStopsExecution(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	result, err := Execute(ctx,
		Step{Name: "create", Mode: Required, Run: func(ctx context.Context) error {
			ran = true
			return nil
		}},
	)

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
	assert.Empty(t, result.Executed)
}
