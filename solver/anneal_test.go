package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/solver"
)

// TestAnnealing_ZeroTemperatureIsGreedyDescent verifies the degenerate
// schedule: worsening moves are never accepted, so the heuristic value of
// the trajectory never increases.
func TestAnnealing_ZeroTemperatureIsGreedyDescent(t *testing.T) {
	level := mustParse(t, lvlOnePush)
	var energies []int
	res := solveOK(t, level, solver.Annealing,
		solver.WithInitialTemperature(0),
		solver.WithMaxIterations(1000),
		solver.WithOnExpand(func(s sokoban.State, _ int) {
			energies = append(energies, level.Heuristic(s))
		}))
	requireSolved(t, level, res)
	for i := 1; i < len(energies); i++ {
		require.LessOrEqual(t, energies[i], energies[i-1],
			"greedy descent must never climb")
	}
}

// TestAnnealing_SeededDeterminism verifies runs are reproducible per seed.
func TestAnnealing_SeededDeterminism(t *testing.T) {
	level := mustParse(t, lvlRoom)
	opts := []solver.Option{
		solver.WithSeed(7),
		solver.WithMaxIterations(500),
		solver.WithRestarts(3),
	}
	first := solveOK(t, level, solver.Annealing, opts...)
	for i := 0; i < 3; i++ {
		again := solveOK(t, level, solver.Annealing, opts...)
		require.Equal(t, first.Status, again.Status)
		require.Equal(t, first.Actions, again.Actions)
		require.Equal(t, first.NodesExpanded, again.NodesExpanded)
		require.Equal(t, first.NodesGenerated, again.NodesGenerated)
	}
	if first.Status == solver.StatusSolved {
		requireSolved(t, level, first)
	} else {
		require.Equal(t, solver.StatusNoSolution, first.Status)
	}
}

// TestAnnealing_BudgetAborts verifies the node cap ends the walk early.
func TestAnnealing_BudgetAborts(t *testing.T) {
	level := mustParse(t, lvlRoom)
	res := solveOK(t, level, solver.Annealing, solver.WithMaxNodes(5))
	require.Equal(t, solver.StatusAborted, res.Status)
	require.Equal(t, 5, res.NodesExpanded)
}

// TestAnnealing_ScheduleValidation verifies the parameter contract when an
// Options value reaches the entry point directly.
func TestAnnealing_ScheduleValidation(t *testing.T) {
	level := mustParse(t, lvlOnePush)

	bad := solver.DefaultOptions()
	bad.CoolingRate = 0
	_, err := solver.SimulatedAnnealing(level, bad)
	require.ErrorIs(t, err, solver.ErrOptionViolation)

	bad = solver.DefaultOptions()
	bad.MinTemperature = 0
	_, err = solver.SimulatedAnnealing(level, bad)
	require.ErrorIs(t, err, solver.ErrOptionViolation)

	bad = solver.DefaultOptions()
	bad.MaxIterations = 0
	_, err = solver.SimulatedAnnealing(level, bad)
	require.ErrorIs(t, err, solver.ErrOptionViolation)

	bad = solver.DefaultOptions()
	bad.Restarts = -1
	_, err = solver.SimulatedAnnealing(level, bad)
	require.ErrorIs(t, err, solver.ErrOptionViolation)
}
