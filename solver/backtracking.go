package solver

import (
	"time"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
)

// SolveBacktracking assigns boxes to targets depth-first and checks the
// constraints only on full assignments: all-different targets, each target
// push-reachable by its box, then the exact realization search. On a
// conflict the most recent assignment is undone and the next domain value
// tried. The stack is explicit, so depth is bounded by the box count, not
// the call stack.
//
// Complexity: O(T^B) assignments worst case for B boxes and T targets,
// plus one state-space search.
func SolveBacktracking(level *sokoban.Level, o Options) (Result, error) {
	if err := precheck(level, &o); err != nil {
		return Result{}, err
	}
	start := time.Now()
	res := Result{Status: StatusNoSolution}
	b := newBudget(&o)
	p := newCSP(level)

	n := len(p.boxes)
	if n == 0 {
		// No boxes means the start is already terminal.
		p.realize(&o, &res)
		res.Elapsed = time.Since(start)

		return res, nil
	}

	assignment := make([]int, n) // target index per box
	next := make([]int, n)       // next domain value to try per depth
	depth := 0

	for depth >= 0 {
		if b.exhausted(res.NodesExpanded) {
			res.Status = StatusAborted

			break
		}

		if depth == n {
			if p.consistentFull(assignment) {
				p.realize(&o, &res)

				break
			}
			depth-- // conflict: undo the most recent assignment

			continue
		}

		if next[depth] >= len(p.targets) {
			next[depth] = 0
			depth--

			continue
		}

		assignment[depth] = next[depth]
		next[depth]++
		res.NodesGenerated++
		res.NodesExpanded++
		depth++
	}
	res.Elapsed = time.Since(start)

	return res, nil
}
