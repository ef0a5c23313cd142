package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/solver"
)

// TestBeam_WideBeamSolves verifies a generous width behaves like a
// heuristic-pruned BFS and finds a valid path, never one shorter than the
// BFS optimum.
func TestBeam_WideBeamSolves(t *testing.T) {
	for _, text := range []string{lvlOnePush, lvlCorridor, lvlTwoBoxes, lvlRoom} {
		level := mustParse(t, text)
		res := solveOK(t, level, solver.Beam, solver.WithBeamWidth(100))
		requireSolved(t, level, res)

		bfs := solveOK(t, level, solver.BFS)
		require.GreaterOrEqual(t, len(res.Actions), len(bfs.Actions),
			"beam can never beat the BFS optimum")
	}
}

// TestBeam_NarrowBeamMayPrune verifies width 1 degrades gracefully: the
// run either solves or reports NoSolution, never hangs or errors.
func TestBeam_NarrowBeamMayPrune(t *testing.T) {
	level := mustParse(t, lvlRoom)
	res := solveOK(t, level, solver.Beam, solver.WithBeamWidth(1))
	require.Contains(t,
		[]solver.Status{solver.StatusSolved, solver.StatusNoSolution},
		res.Status)
	if res.Status == solver.StatusSolved {
		requireSolved(t, level, res)
	}
}

// TestBeam_WidthValidation verifies the width contract on both the option
// and the direct entry point.
func TestBeam_WidthValidation(t *testing.T) {
	level := mustParse(t, lvlOnePush)

	_, err := solver.Solve(level, solver.Beam, solver.WithBeamWidth(-5))
	require.ErrorIs(t, err, solver.ErrOptionViolation)

	// A zero-value Options passed straight to the entry point is caught too.
	_, err = solver.BeamSearch(level, solver.Options{})
	require.ErrorIs(t, err, solver.ErrOptionViolation)
}

// TestBeam_DepthCapAborts verifies layer truncation maps to Aborted.
func TestBeam_DepthCapAborts(t *testing.T) {
	level := mustParse(t, lvlCorridor)
	res := solveOK(t, level, solver.Beam, solver.WithMaxDepth(1))
	require.Equal(t, solver.StatusAborted, res.Status)
}

// TestBeam_Deterministic verifies tie-breaking by insertion order keeps
// repeated runs identical.
func TestBeam_Deterministic(t *testing.T) {
	level := mustParse(t, lvlTwoBoxes)
	first := solveOK(t, level, solver.Beam, solver.WithBeamWidth(3))
	for i := 0; i < 5; i++ {
		again := solveOK(t, level, solver.Beam, solver.WithBeamWidth(3))
		require.Equal(t, first.Status, again.Status)
		require.Equal(t, first.Actions, again.Actions)
		require.Equal(t, first.NodesExpanded, again.NodesExpanded)
	}
}
