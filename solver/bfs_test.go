package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/solver"
)

// TestBreadthFirst_Optimal pins the minimum-action guarantee on the
// corridor level: two walks and one push.
func TestBreadthFirst_Optimal(t *testing.T) {
	level := mustParse(t, lvlCorridor)
	res := solveOK(t, level, solver.BFS)
	requireSolved(t, level, res)
	require.Len(t, res.Actions, 3)
	require.Equal(t, "R R R!", actionLine(res.Actions))
}

// TestDepthFirst_SolvesButMayWander verifies DFS finds a valid (not
// necessarily shortest) path and respects the fixed traversal order.
func TestDepthFirst_SolvesButMayWander(t *testing.T) {
	level := mustParse(t, lvlRoom)
	dfs := solveOK(t, level, solver.DFS)
	requireSolved(t, level, dfs)

	bfs := solveOK(t, level, solver.BFS)
	require.GreaterOrEqual(t, len(dfs.Actions), len(bfs.Actions),
		"DFS can never beat the BFS optimum")
}

// TestBreadthFirst_ContextCancel verifies a cancelled context aborts the
// run with partial statistics instead of hanging or erroring.
func TestBreadthFirst_ContextCancel(t *testing.T) {
	level := mustParse(t, lvlRoom)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := solveOK(t, level, solver.BFS, solver.WithContext(ctx))
	require.Equal(t, solver.StatusAborted, res.Status)
	require.Zero(t, res.NodesExpanded)
}

// TestBreadthFirst_MaxNodes verifies the node cap fires as Aborted.
func TestBreadthFirst_MaxNodes(t *testing.T) {
	level := mustParse(t, lvlRoom)
	res := solveOK(t, level, solver.BFS, solver.WithMaxNodes(3))
	require.Equal(t, solver.StatusAborted, res.Status)
	require.Equal(t, 3, res.NodesExpanded)
}

// TestBreadthFirst_MaxDepth verifies depth truncation on a level whose
// optimum lies beyond the cap.
func TestBreadthFirst_MaxDepth(t *testing.T) {
	level := mustParse(t, lvlCorridor)
	res := solveOK(t, level, solver.BFS, solver.WithMaxDepth(1))
	require.Equal(t, solver.StatusAborted, res.Status)

	// A generous cap leaves the optimum reachable.
	res = solveOK(t, level, solver.BFS, solver.WithMaxDepth(10))
	requireSolved(t, level, res)
	require.Len(t, res.Actions, 3)
}

// TestBreadthFirst_ExpandHook verifies the hook sees the root first and
// depths never decrease by more than the frontier discipline allows.
func TestBreadthFirst_ExpandHook(t *testing.T) {
	level := mustParse(t, lvlCorridor)
	var states []sokoban.State
	var depths []int
	res := solveOK(t, level, solver.BFS, solver.WithOnExpand(func(s sokoban.State, depth int) {
		states = append(states, s)
		depths = append(depths, depth)
	}))
	requireSolved(t, level, res)
	require.Equal(t, res.NodesExpanded, len(states))
	require.True(t, states[0].Equal(level.InitialState()))
	for i := 1; i < len(depths); i++ {
		require.GreaterOrEqual(t, depths[i], depths[i-1], "BFS expands in depth layers")
	}
}

// TestBreadthFirst_Statistics sanity-checks the counters on a solved run.
func TestBreadthFirst_Statistics(t *testing.T) {
	level := mustParse(t, lvlRoom)
	res := solveOK(t, level, solver.BFS)
	requireSolved(t, level, res)
	require.Positive(t, res.NodesExpanded)
	require.GreaterOrEqual(t, res.NodesGenerated, res.NodesExpanded)
	require.Positive(t, res.PeakFrontier)
	require.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))
}

// actionLine renders actions as a space-separated line for assertions.
func actionLine(actions []sokoban.Action) string {
	out := ""
	for i, a := range actions {
		if i > 0 {
			out += " "
		}
		out += a.String()
	}

	return out
}
