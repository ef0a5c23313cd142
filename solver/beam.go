package solver

import (
	"fmt"
	"sort"
	"time"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
)

// BeamSearch runs bounded-width layered search: each step expands every
// node of the current layer, deduplicates the children globally, ranks
// them by heuristic value (insertion order breaks ties), and keeps the
// best BeamWidth as the next layer. A goal encountered while generating
// children ends the search immediately.
//
// Smaller widths trade completeness for memory: the search reports
// NoSolution when the beam prunes away every continuation, even on
// solvable levels. A depth cap truncation is reported as Aborted.
//
// Complexity: O(D·K·B) time for D layers and width K, O(K·B) memory
// per layer plus the global visited set.
func BeamSearch(level *sokoban.Level, o Options) (Result, error) {
	if err := precheck(level, &o); err != nil {
		return Result{}, err
	}
	if o.BeamWidth <= 0 {
		return Result{}, fmt.Errorf("%w: BeamWidth must be positive (%d)", ErrOptionViolation, o.BeamWidth)
	}
	start := time.Now()
	res := Result{Status: StatusNoSolution}
	b := newBudget(&o)

	root := &node{state: level.InitialState()}
	if level.IsGoal(root.state) {
		res.Status = StatusSolved
		res.Actions, res.States = root.path()
		res.NodesGenerated = 1
		res.PeakFrontier = 1
		res.Elapsed = time.Since(start)

		return res, nil
	}

	beam := []*node{root}
	visited := map[string]bool{root.state.Key(): true}
	res.NodesGenerated = 1
	res.PeakFrontier = 1

	type ranked struct {
		h     int
		order int
		n     *node
	}

	depth := 0
	for len(beam) > 0 {
		if o.MaxDepth > 0 && depth >= o.MaxDepth {
			res.Status = StatusAborted

			break
		}

		candidates := make([]ranked, 0, len(beam)*2)
		var goal *node
		order := 0
		for _, n := range beam {
			if b.exhausted(res.NodesExpanded) {
				res.Status = StatusAborted
				res.Elapsed = time.Since(start)

				return res, nil
			}
			res.NodesExpanded++
			o.expand(n.state, n.depth)

			for _, mv := range level.Transitions(n.state) {
				k := mv.State.Key()
				if visited[k] {
					continue
				}
				visited[k] = true
				child := &node{state: mv.State, parent: n, act: mv.Action, depth: n.depth + 1}
				res.NodesGenerated++
				if level.IsGoal(mv.State) {
					goal = child

					break
				}
				candidates = append(candidates, ranked{h: level.Heuristic(mv.State), order: order, n: child})
				order++
			}
			if goal != nil {
				break
			}
		}

		if goal != nil {
			res.Status = StatusSolved
			res.Actions, res.States = goal.path()

			break
		}
		if len(candidates) == 0 {
			break // beam exhausted: every continuation pruned or visited
		}

		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].h != candidates[j].h {
				return candidates[i].h < candidates[j].h
			}

			return candidates[i].order < candidates[j].order
		})
		width := o.BeamWidth
		if width > len(candidates) {
			width = len(candidates)
		}
		beam = beam[:0]
		for _, c := range candidates[:width] {
			beam = append(beam, c.n)
		}
		if len(candidates) > res.PeakFrontier {
			res.PeakFrontier = len(candidates)
		}
		depth++
	}
	res.Elapsed = time.Since(start)

	return res, nil
}
