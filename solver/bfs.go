package solver

import (
	"time"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
)

// BreadthFirst runs uninformed breadth-first search. The frontier is a FIFO
// queue and states are deduplicated when generated, so the returned path has
// the minimum number of actions among all solutions.
//
// Complexity: O(S·B) time over reachable states S with branching factor B,
// O(S) memory for the visited set and frontier.
func BreadthFirst(level *sokoban.Level, o Options) (Result, error) {
	if err := precheck(level, &o); err != nil {
		return Result{}, err
	}
	start := time.Now()
	res := breadthFirstCore(level, level.InitialState(), level.IsGoal, &o, nil)
	res.Elapsed = time.Since(start)

	return res, nil
}

// breadthFirstCore is the FIFO search loop shared by BreadthFirst, the
// local solve of partial-observability search, and the CSP path realization
// (which supplies its own goal predicate). A non-nil goalNode receiver gets
// the goal node for callers that need more than the reconstructed path.
func breadthFirstCore(level *sokoban.Level, from sokoban.State, goal func(sokoban.State) bool, o *Options, goalNode **node) Result {
	res := Result{Status: StatusNoSolution}
	b := newBudget(o)

	root := &node{state: from}
	queue := []*node{root}
	visited := map[string]bool{from.Key(): true}
	res.NodesGenerated = 1

	truncated := false
	for len(queue) > 0 {
		if len(queue) > res.PeakFrontier {
			res.PeakFrontier = len(queue)
		}
		if b.exhausted(res.NodesExpanded) {
			res.Status = StatusAborted

			return res
		}

		n := queue[0]
		queue = queue[1:]
		res.NodesExpanded++
		o.expand(n.state, n.depth)

		if goal(n.state) {
			res.Status = StatusSolved
			res.Actions, res.States = n.path()
			if goalNode != nil {
				*goalNode = n
			}

			return res
		}

		if o.MaxDepth > 0 && n.depth >= o.MaxDepth {
			truncated = true

			continue
		}
		for _, mv := range level.Transitions(n.state) {
			k := mv.State.Key()
			if visited[k] {
				continue
			}
			visited[k] = true
			queue = append(queue, &node{state: mv.State, parent: n, act: mv.Action, depth: n.depth + 1})
			res.NodesGenerated++
		}
	}

	// The frontier emptied below the depth cap: the space was not exhausted.
	if truncated {
		res.Status = StatusAborted
	}

	return res
}
