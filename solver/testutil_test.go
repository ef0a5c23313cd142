// Package solver_test provides the fixtures and replay helpers shared by
// the per-strategy test files in this package.
package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/solver"
)

// Fixture levels used across the strategy tests.
const (
	// lvlOnePush is solved by a single push to the right.
	lvlOnePush = `#####
#@$.#
#####`

	// lvlCorridor is solved by two walks and one push (3 actions optimal).
	lvlCorridor = `#######
#@  $.#
#######`

	// lvlUnsolvable parks its box in a dead corner off-target.
	lvlUnsolvable = `#####
#@ $#
# . #
#####`

	// lvlTwoBoxes pairs two boxes with two targets on separate rows.
	lvlTwoBoxes = `#######
#@$ . #
# $ . #
#######`

	// lvlRoom is a roomier solvable instance for budget and hook tests.
	lvlRoom = `########
#@     #
#  $   #
# #  # #
#   .  #
########`
)

// mustParse builds a fixture level or fails the test.
func mustParse(t *testing.T, text string) *sokoban.Level {
	t.Helper()
	level, err := sokoban.Parse(text)
	require.NoError(t, err, "fixture must parse")

	return level
}

// requireSolved replays a solved Result against the level: the state
// sequence must start at the initial state, follow Actions step by step
// through Apply, and end on a goal.
func requireSolved(t *testing.T, level *sokoban.Level, res solver.Result) {
	t.Helper()
	require.Equal(t, solver.StatusSolved, res.Status, "expected a solution")
	require.Len(t, res.States, len(res.Actions)+1, "state/action length contract")
	require.True(t, res.States[0].Equal(level.InitialState()), "replay must start at the initial state")

	cur := res.States[0]
	for i, act := range res.Actions {
		next, ok := level.Apply(cur, act)
		require.Truef(t, ok, "action %d (%v) illegal in %v", i, act, cur)
		require.Truef(t, next.Equal(res.States[i+1]), "state %d mismatch after %v", i+1, act)
		cur = next
	}
	require.True(t, level.IsGoal(cur), "replay must end on a goal state")
}

// solveOK dispatches and requires a clean (error-free) invocation.
func solveOK(t *testing.T, level *sokoban.Level, algo solver.Algorithm, opts ...solver.Option) solver.Result {
	t.Helper()
	res, err := solver.Solve(level, algo, opts...)
	require.NoError(t, err)

	return res
}
