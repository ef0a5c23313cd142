package solver

import (
	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
)

// The CSP strategies reformulate box placement as a constraint problem:
// one variable per box (in canonical box order), the domain of each is the
// set of target cells, and an assignment is consistent when no two boxes
// claim the same target and each box can actually be pushed to its target.
//
// Realizability is approximated per box by an optimistic push-reachability
// relation (walls only, agent and other boxes ignored) and decided exactly
// by a breadth-first search once a consistent full assignment is found.
// Because box and target counts are equal and assignments are
// all-different, every consistent full assignment covers the entire target
// set, so one exact check settles the whole problem either way.
//
// NodesExpanded counts committed variable assignments and NodesGenerated
// counts domain values examined; the exact-check search contributes its own
// expansions on top. These are the figures the Backtracking/ForwardChecking
// comparison is about.

// csp carries the shared state of one CSP run.
type csp struct {
	level   *sokoban.Level
	boxes   []sokoban.Coord // variables, canonical order
	targets []sokoban.Coord // domain values, row-major order
	reach   []map[int]bool  // reach[i]: target indices box i can be pushed to
}

func newCSP(level *sokoban.Level) *csp {
	p := &csp{
		level:   level,
		boxes:   level.InitialState().Boxes(),
		targets: level.Targets(),
	}
	p.reach = make([]map[int]bool, len(p.boxes))
	for i, b := range p.boxes {
		p.reach[i] = p.reachableTargets(b)
	}

	return p
}

// reachableTargets runs an optimistic push-reachability sweep for one box:
// a push from cell c in direction d needs both the cell beyond and the cell
// behind (where the agent stands) to be inside the grid and wall-free.
// Corner-deadlock cells are absorbing: a box pushed into one never leaves.
// Ignoring the agent and the other boxes only ever over-approximates, so
// pruning on this relation never discards a feasible assignment.
func (p *csp) reachableTargets(from sokoban.Coord) map[int]bool {
	reached := map[sokoban.Coord]bool{from: true}
	queue := []sokoban.Coord{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if p.level.IsCornerDeadlock(c) {
			continue
		}
		for _, d := range []sokoban.Dir{sokoban.Up, sokoban.Down, sokoban.Left, sokoban.Right} {
			to := c.Step(d)
			back := c.Step(d.Opposite())
			if p.level.Blocked(to) || p.level.Blocked(back) || reached[to] {
				continue
			}
			reached[to] = true
			queue = append(queue, to)
		}
	}

	out := make(map[int]bool, len(p.targets))
	for i, t := range p.targets {
		if reached[t] {
			out[i] = true
		}
	}

	return out
}

// realize settles a consistent full assignment exactly: a breadth-first
// search for the goal configuration. Its statistics are merged into res.
// Since every consistent assignment covers the whole target set, a failed
// realization proves the level unsolvable and ends the run.
func (p *csp) realize(o *Options, res *Result) {
	sub := breadthFirstCore(p.level, p.level.InitialState(), p.level.IsGoal, o, nil)
	res.NodesExpanded += sub.NodesExpanded
	res.NodesGenerated += sub.NodesGenerated
	if sub.PeakFrontier > res.PeakFrontier {
		res.PeakFrontier = sub.PeakFrontier
	}
	res.Status = sub.Status
	res.Actions = sub.Actions
	res.States = sub.States
}

// consistentFull checks a full assignment: pairwise-distinct targets and
// per-box push-reachability.
func (p *csp) consistentFull(assignment []int) bool {
	used := make(map[int]bool, len(assignment))
	for i, t := range assignment {
		if used[t] || !p.reach[i][t] {
			return false
		}
		used[t] = true
	}

	return true
}
