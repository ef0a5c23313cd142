package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/solver"
)

// TestExplore_FullVisionMatchesBFS verifies a radius covering the whole
// grid degenerates to plain breadth-first search.
func TestExplore_FullVisionMatchesBFS(t *testing.T) {
	level := mustParse(t, lvlTwoBoxes)
	bfs := solveOK(t, level, solver.BFS)
	explored := solveOK(t, level, solver.PartialObservation, solver.WithVisionRadius(10))
	requireSolved(t, level, explored)
	require.Equal(t, len(bfs.Actions), len(explored.Actions),
		"full vision needs no exploration prefix")
}

// TestExplore_NarrowVisionWalksThenSolves verifies the agent explores the
// room under radius 1 and still produces a legal, goal-reaching replay.
func TestExplore_NarrowVisionWalksThenSolves(t *testing.T) {
	level := mustParse(t, lvlRoom)
	res := solveOK(t, level, solver.PartialObservation, solver.WithVisionRadius(1))
	requireSolved(t, level, res)

	// Exploration costs extra walks over the omniscient optimum.
	bfs := solveOK(t, level, solver.BFS)
	require.GreaterOrEqual(t, len(res.Actions), len(bfs.Actions))
}

// TestExplore_BoxBlocksVision pins the documented incompleteness: a box
// sealing the only corridor hides the target, exploration stalls, and the
// run reports NoSolution without pushing blindly.
func TestExplore_BoxBlocksVision(t *testing.T) {
	level := mustParse(t, lvlCorridor)
	res := solveOK(t, level, solver.PartialObservation, solver.WithVisionRadius(1))
	require.Equal(t, solver.StatusNoSolution, res.Status)
}

// TestExplore_ZeroRadius verifies the blind agent gives up immediately on
// anything it is not already standing on.
func TestExplore_ZeroRadius(t *testing.T) {
	level := mustParse(t, lvlCorridor)
	res := solveOK(t, level, solver.PartialObservation, solver.WithVisionRadius(0))
	require.Equal(t, solver.StatusNoSolution, res.Status)
}

// TestExplore_BudgetAborts verifies step caps end exploration early.
func TestExplore_BudgetAborts(t *testing.T) {
	level := mustParse(t, lvlRoom)
	res := solveOK(t, level, solver.PartialObservation,
		solver.WithVisionRadius(1), solver.WithMaxNodes(2))
	require.Equal(t, solver.StatusAborted, res.Status)
}

// TestExplore_RadiusValidation verifies the non-negative contract when the
// entry point is called directly.
func TestExplore_RadiusValidation(t *testing.T) {
	level := mustParse(t, lvlOnePush)
	bad := solver.DefaultOptions()
	bad.VisionRadius = -1
	_, err := solver.ExploreUnknown(level, bad)
	require.ErrorIs(t, err, solver.ErrOptionViolation)
}
