package solver

import (
	"fmt"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
)

// Solve runs the selected strategy on level with the supplied options and
// returns its Result by value. It is the single entry point callers that
// pick strategies at run time should use; each strategy also has its own
// exported function for direct invocation.
//
// Invalid options surface here as ErrOptionViolation; an unrecognized
// Algorithm value yields ErrUnknownAlgorithm. A returned error means the
// search never ran. Budget caps never produce an error; they end the run
// with StatusAborted.
func Solve(level *sokoban.Level, algo Algorithm, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch algo {
	case BFS:
		return BreadthFirst(level, o)
	case DFS:
		return DepthFirst(level, o)
	case Greedy:
		return GreedyBestFirst(level, o)
	case AStar:
		return AStarSearch(level, o)
	case Beam:
		return BeamSearch(level, o)
	case Annealing:
		return SimulatedAnnealing(level, o)
	case PartialObservation:
		return ExploreUnknown(level, o)
	case Backtracking:
		return SolveBacktracking(level, o)
	case ForwardChecking:
		return SolveForwardChecking(level, o)
	case AndOr:
		return AndOrSearch(level, o)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}

// SolveByName resolves an algorithm name with ParseAlgorithm and runs it.
func SolveByName(level *sokoban.Level, name string, opts ...Option) (Result, error) {
	algo, err := ParseAlgorithm(name)
	if err != nil {
		return Result{}, err
	}

	return Solve(level, algo, opts...)
}
