package solver

import (
	"time"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
)

// SolveForwardChecking solves the same box-to-target CSP as
// SolveBacktracking, but propagates after every partial assignment instead
// of waiting for full ones: the domains start pruned to push-reachable
// targets, each committed assignment removes its target from all later
// domains (all-different), and an emptied domain triggers an immediate
// backtrack. With equal box and target counts the all-different pruning is
// exactly the pigeonhole argument on the remaining targets.
//
// Variables are tried in the same canonical box order as plain
// backtracking, so forward checking expands at most as many assignments;
// earlier dead-end detection is the whole difference.
func SolveForwardChecking(level *sokoban.Level, o Options) (Result, error) {
	if err := precheck(level, &o); err != nil {
		return Result{}, err
	}
	start := time.Now()
	res := Result{Status: StatusNoSolution}
	b := newBudget(&o)
	p := newCSP(level)

	n := len(p.boxes)
	if n == 0 {
		p.realize(&o, &res)
		res.Elapsed = time.Since(start)

		return res, nil
	}

	// Initial domains keep only push-reachable targets, in row-major order.
	initial := make([][]int, n)
	for i := range initial {
		for t := range p.targets {
			if p.reach[i][t] {
				initial[i] = append(initial[i], t)
			}
		}
	}

	// domains[d] is the per-variable domain view in effect when variable d
	// is chosen; committing an assignment installs a pruned copy at d+1.
	domains := make([][][]int, n+1)
	domains[0] = initial
	next := make([]int, n)
	depth := 0

	for depth >= 0 {
		if b.exhausted(res.NodesExpanded) {
			res.Status = StatusAborted

			break
		}

		if depth == n {
			// Propagation kept the partial assignments consistent all the
			// way down; settle realizability exactly.
			p.realize(&o, &res)

			break
		}

		doms := domains[depth]
		if next[depth] >= len(doms[depth]) {
			next[depth] = 0
			depth--

			continue
		}

		v := doms[depth][next[depth]]
		next[depth]++
		res.NodesGenerated++

		pruned := pruneDomains(doms, depth, v)
		if pruned == nil {
			continue // some unassigned box lost its last target
		}
		res.NodesExpanded++
		domains[depth+1] = pruned
		depth++
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

// pruneDomains removes value v from the domains of all variables after
// depth, returning the new domain view, or nil when a domain empties.
// Domains at or before depth are shared, not copied.
func pruneDomains(doms [][]int, depth, v int) [][]int {
	out := make([][]int, len(doms))
	copy(out, doms[:depth+1])
	for j := depth + 1; j < len(doms); j++ {
		kept := make([]int, 0, len(doms[j]))
		for _, t := range doms[j] {
			if t != v {
				kept = append(kept, t)
			}
		}
		if len(kept) == 0 {
			return nil
		}
		out[j] = kept
	}

	return out
}
