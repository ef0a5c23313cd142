package solver

import (
	"time"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
)

// DepthFirst runs uninformed depth-first search over an explicit LIFO stack,
// so depth is bounded only by memory, never by the call stack. Successors
// are pushed in reversed generation order to keep the traversal order
// stable (U before D before L before R on pop). DFS gives no optimality
// guarantee; cap it with WithMaxDepth on large instances.
//
// Complexity: O(S·B) time, O(S) memory, as for BFS.
func DepthFirst(level *sokoban.Level, o Options) (Result, error) {
	if err := precheck(level, &o); err != nil {
		return Result{}, err
	}
	start := time.Now()
	res := Result{Status: StatusNoSolution}
	b := newBudget(&o)

	root := &node{state: level.InitialState()}
	stack := []*node{root}
	visited := map[string]bool{root.state.Key(): true}
	res.NodesGenerated = 1

	truncated := false
	for len(stack) > 0 {
		if len(stack) > res.PeakFrontier {
			res.PeakFrontier = len(stack)
		}
		if b.exhausted(res.NodesExpanded) {
			res.Status = StatusAborted

			break
		}

		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res.NodesExpanded++
		o.expand(n.state, n.depth)

		if level.IsGoal(n.state) {
			res.Status = StatusSolved
			res.Actions, res.States = n.path()

			break
		}

		if o.MaxDepth > 0 && n.depth >= o.MaxDepth {
			truncated = true

			continue
		}
		moves := level.Transitions(n.state)
		for i := len(moves) - 1; i >= 0; i-- {
			mv := moves[i]
			k := mv.State.Key()
			if visited[k] {
				continue
			}
			visited[k] = true
			stack = append(stack, &node{state: mv.State, parent: n, act: mv.Action, depth: n.depth + 1})
			res.NodesGenerated++
		}
	}

	if res.Status == StatusNoSolution && truncated {
		res.Status = StatusAborted
	}
	res.Elapsed = time.Since(start)

	return res, nil
}
