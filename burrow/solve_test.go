package burrow_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/burrow"
)

// ------------------------------------------------------------------------
// 1. Scenarios with hand-computed optima.
// ------------------------------------------------------------------------

func TestSolve_AlreadySolved(t *testing.T) {
	s := mustState(t, emptyHall, "AA", "BB", "CC", "DD")

	res, err := burrow.Solve(s)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Cost)
	assert.Equal(t, 0, res.Expanded)
}

func TestSolve_SwappedPair(t *testing.T) {
	// B sits on A in room 0, A sits on B in room 1.
	// Cheapest order: B out to 3 (20), A out to 5 (2), B home (20), A home (4).
	// Starting with A parked at 3 instead forces B the long way round (64).
	s := mustState(t, emptyHall, "BA", "AB", "CC", "DD")

	res, err := burrow.Solve(s)
	require.NoError(t, err)
	assert.Equal(t, int64(46), res.Cost)
}

func TestSolve_BlockedCorridor(t *testing.T) {
	// A at 9 can only reach room 0 once D at 3 has gone home.
	s := mustState(t, "...D.....A.", ".A", "BB", "CC", ".D")

	res, err := burrow.Solve(s, burrow.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(6*1000+8*1), res.Cost)
	require.Len(t, res.Path, 2)
	assert.Equal(t, burrow.Desert, res.Path[0].Kind)
	assert.Equal(t, burrow.Amber, res.Path[1].Kind)
}

func TestSolve_Example(t *testing.T) {
	res, err := burrow.Solve(example(t))
	require.NoError(t, err)
	assert.Equal(t, int64(12521), res.Cost)
	assert.Positive(t, res.Expanded)
	assert.GreaterOrEqual(t, res.Pushed, res.Expanded)
}

func TestSolve_ExampleUnfolded(t *testing.T) {
	if testing.Short() {
		t.Skip("depth-4 search skipped in short mode")
	}
	res, err := burrow.Solve(exampleUnfolded(t))
	require.NoError(t, err)
	assert.Equal(t, int64(44169), res.Cost)
}

func TestSolve_DepthOne(t *testing.T) {
	// Rooms of depth 1 still work: B and A swap through the hallway.
	// B out to 3 (20), A out to 5 (2), B home (20), A home (4).
	s := mustState(t, emptyHall, "B", "A", "C", "D")

	res, err := burrow.Solve(s)
	require.NoError(t, err)
	assert.Equal(t, int64(46), res.Cost)
}

// ------------------------------------------------------------------------
// 2. No-solution outcomes.
// ------------------------------------------------------------------------

func TestSolve_DeadlockHasNoSolution(t *testing.T) {
	s := mustState(t, "...D.A.....", ".A", "BB", "CC", ".D")

	res, err := burrow.Solve(s)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, burrow.ErrNoSolution)
}

func TestSolve_WrongTokenCountsHaveNoSolution(t *testing.T) {
	// Three A and a single B can never fill rooms 0 and 1 correctly.
	s := mustState(t, emptyHall, "AA", "AB", "CC", "DD")

	_, err := burrow.Solve(s)
	assert.ErrorIs(t, err, burrow.ErrNoSolution)
}

func TestSolve_InvalidStart(t *testing.T) {
	_, err := burrow.Solve(burrow.State{})
	assert.ErrorIs(t, err, burrow.ErrInvalidState)
	assert.NotErrorIs(t, err, burrow.ErrNoSolution)
}

// ------------------------------------------------------------------------
// 3. Options.
// ------------------------------------------------------------------------

func TestSolve_MaxCost(t *testing.T) {
	s := example(t)

	_, err := burrow.Solve(s, burrow.WithMaxCost(12520))
	assert.ErrorIs(t, err, burrow.ErrNoSolution)

	res, err := burrow.Solve(s, burrow.WithMaxCost(12521))
	require.NoError(t, err)
	assert.Equal(t, int64(12521), res.Cost)

	assert.PanicsWithValue(t, burrow.ErrBadMaxCost.Error(), func() {
		_, _ = burrow.Solve(s, burrow.WithMaxCost(-1))
	})
}

func TestSolve_ReturnPathReplays(t *testing.T) {
	start := example(t)

	res, err := burrow.Solve(start, burrow.WithReturnPath())
	require.NoError(t, err)
	require.NotEmpty(t, res.Path)

	var total int64
	cur := start
	for i, m := range res.Path {
		legal := false
		for _, cand := range cur.Moves() {
			if cand == m {
				legal = true
				break
			}
		}
		require.True(t, legal, "step %d (%s) is not a legal move from %s", i, m, cur)
		total += m.Cost
		cur = m.Next
	}
	assert.True(t, cur.IsGoal())
	assert.Equal(t, res.Cost, total)
}

func TestSolve_ReturnPathAlreadySolved(t *testing.T) {
	res, err := burrow.Solve(burrow.SolvedState(2), burrow.WithReturnPath())
	require.NoError(t, err)
	assert.NotNil(t, res.Path)
	assert.Empty(t, res.Path)
}

func TestSolve_NoPathUnlessRequested(t *testing.T) {
	res, err := burrow.Solve(example(t))
	require.NoError(t, err)
	assert.Nil(t, res.Path)
}

func TestSolve_OnExpandCountsExpansions(t *testing.T) {
	var calls int
	var last int64
	res, err := burrow.Solve(example(t), burrow.WithOnExpand(func(_ burrow.State, cost int64) {
		calls++
		assert.GreaterOrEqual(t, cost, last, "states are expanded in cost order")
		last = cost
	}))
	require.NoError(t, err)
	assert.Equal(t, res.Expanded, calls)
}

func TestSolve_Deterministic(t *testing.T) {
	a, err := burrow.Solve(example(t))
	require.NoError(t, err)
	b, err := burrow.Solve(example(t))
	require.NoError(t, err)

	assert.Equal(t, a.Cost, b.Cost)
	assert.Equal(t, a.Expanded, b.Expanded)
	assert.Equal(t, a.Pushed, b.Pushed)
}

func TestSolve_Logging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := burrow.Solve(example(t), burrow.WithLogger(logger))
	require.NoError(t, err)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "burrow: goal reached", entry.Message)
	assert.Equal(t, int64(12521), entry.Data["cost"])
	assert.Equal(t, 2, entry.Data["depth"])

	hook.Reset()
	_, err = burrow.Solve(mustState(t, "...D.A.....", ".A", "BB", "CC", ".D"), burrow.WithLogger(logger))
	require.ErrorIs(t, err, burrow.ErrNoSolution)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "burrow: frontier exhausted", hook.LastEntry().Message)
}
