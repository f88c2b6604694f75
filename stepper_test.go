package astar

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepper_MatchesRun(t *testing.T) {
	start, end := Position{0, 0}, Position{4, 4}
	barriers := []Position{{1, 1}, {2, 2}, {3, 3}}

	reference := newBoard(5, start, end, barriers...)
	referenceSteps := 0
	want := Run(reference, start, end, func() { referenceSteps++ }, nil, WithLogger(quietLogger()))

	grid := newBoard(5, start, end, barriers...)
	stepper := NewStepper(context.Background(), grid, start, end, WithLogger(quietLogger()))
	defer stepper.Close()

	var snapshot StepSnapshot
	var err error
	for i := 0; i < 1000; i++ {
		snapshot, err = stepper.Step()
		require.NoError(t, err)
		if snapshot.Done {
			break
		}
		assert.Equal(t, Running, snapshot.Result.Outcome)
		assert.Equal(t, i+1, snapshot.StepIndex)
	}

	require.True(t, snapshot.Done)
	assert.True(t, stepper.Done())
	assert.Equal(t, referenceSteps, snapshot.StepIndex)
	if diff := cmp.Diff(want, snapshot.Result); diff != "" {
		t.Errorf("stepped result differs (-run +stepper):\n%s", diff)
	}
	if diff := cmp.Diff(reference.States(), grid.States()); diff != "" {
		t.Errorf("grid tags differ (-run +stepper):\n%s", diff)
	}

	again, err := stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, snapshot, again)
	assert.Equal(t, want, stepper.Result())
}

func TestStepper_GridAdvancesBetweenSteps(t *testing.T) {
	start, end := Position{0, 0}, Position{0, 3}
	grid := newBoard(4, start, end)
	stepper := NewStepper(context.Background(), grid, start, end, WithLogger(quietLogger()))
	defer stepper.Close()

	assert.Zero(t, grid.Count(Open))
	_, err := stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, 2, grid.Count(Open))
}

func TestStepper_CloseCancels(t *testing.T) {
	start, end := Position{0, 0}, Position{7, 7}
	grid := newBoard(8, start, end)
	stepper := NewStepper(context.Background(), grid, start, end, WithLogger(quietLogger()))

	for i := 0; i < 3; i++ {
		_, err := stepper.Step()
		require.NoError(t, err)
	}
	stepper.Close()

	snapshot, _ := stepper.Step()
	assert.True(t, snapshot.Done)
	assert.Equal(t, Cancelled, snapshot.Result.Outcome)
	assert.Zero(t, grid.Count(Path))
}

func TestStepper_CloseBeforeFirstStep(t *testing.T) {
	start, end := Position{0, 0}, Position{2, 2}
	stepper := NewStepper(context.Background(), newBoard(3, start, end), start, end, WithLogger(quietLogger()))
	stepper.Close()

	result := stepper.Result()
	assert.Equal(t, Cancelled, result.Outcome)
	assert.Zero(t, result.Expanded)
}

func TestStepper_GridIsQuietAfterClose(t *testing.T) {
	start, end := Position{0, 0}, Position{7, 7}
	for i := 0; i < 200; i++ {
		grid := newBoard(8, start, end)
		stepper := NewStepper(context.Background(), grid, start, end, WithLogger(quietLogger()))
		for j := 0; j < 3; j++ {
			_, err := stepper.Step()
			require.NoError(t, err)
		}
		stepper.Close()

		// The caller owns the grid again as soon as Close returns.
		grid.Clear()
		grid.MarkBarrier(1, 1)
		require.Equal(t, Cancelled, stepper.Result().Outcome)
	}
}

func TestStepper_CloseDuringPathRebuild(t *testing.T) {
	start, end := Position{0, 0}, Position{4, 4}
	grid := newBoard(5, start, end)
	stepper := NewStepper(context.Background(), grid, start, end, WithLogger(quietLogger()))

	// 24 expansions, then the first two path cells.
	for i := 0; i < 26; i++ {
		snapshot, err := stepper.Step()
		require.NoError(t, err)
		require.False(t, snapshot.Done)
	}
	stepper.Close()

	result := stepper.Result()
	assert.Equal(t, Succeeded, result.Outcome)
	assert.Len(t, result.Interior, 7)
	assert.Equal(t, 7, grid.Count(Path))
	assert.Equal(t, End, grid.State(end))
}

func TestStepper_ParentCancelled(t *testing.T) {
	start, end := Position{0, 0}, Position{7, 7}
	grid := newBoard(8, start, end)
	ctx, cancel := context.WithCancel(context.Background())
	stepper := NewStepper(ctx, grid, start, end, WithLogger(quietLogger()))
	defer stepper.Close()

	for i := 0; i < 2; i++ {
		_, err := stepper.Step()
		require.NoError(t, err)
	}
	cancel()

	// The search stays parked until it is handed control again.
	before := grid.States()
	time.Sleep(20 * time.Millisecond)
	if diff := cmp.Diff(before, grid.States()); diff != "" {
		t.Errorf("grid changed without a step (-before +after):\n%s", diff)
	}

	snapshot, err := stepper.Step()
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, snapshot.Done)
	assert.Equal(t, Cancelled, snapshot.Result.Outcome)
	assert.Equal(t, 2, snapshot.StepIndex)
}

func TestStepper_ResultRunsToCompletion(t *testing.T) {
	start, end := Position{0, 0}, Position{4, 4}
	reference := newBoard(5, start, end)
	want := Run(reference, start, end, nil, nil, WithLogger(quietLogger()))

	grid := newBoard(5, start, end)
	stepper := NewStepper(context.Background(), grid, start, end, WithLogger(quietLogger()))
	_, err := stepper.Step()
	require.NoError(t, err)

	assert.Equal(t, want, stepper.Result())
	assert.True(t, stepper.Done())
	if diff := cmp.Diff(reference.States(), grid.States()); diff != "" {
		t.Errorf("grid tags differ (-run +stepper):\n%s", diff)
	}
}
