package solver

import (
	"fmt"
	"sort"
	"time"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
)

// terrain is what the belief map records about one observed cell.
type terrain uint8

const (
	terrainUnknown terrain = iota // never observed; the map zero value
	terrainFree                   // walkable floor or target
	terrainWall                   // impassable
	terrainBox                    // blocked by a box during exploration
)

// ExploreUnknown searches under partial observability: the agent perceives
// only cells within VisionRadius of its position and treats everything
// unseen as unknown. The loop alternates observation and movement:
//
//  1. Reveal all in-bounds cells within the radius and merge them into the
//     belief map.
//  2. Once every box and every target has been observed, solve the rest of
//     the puzzle with an internal breadth-first search from the current
//     state and splice the solution onto the walk so far.
//  3. Otherwise walk one step along a shortest known-cells path toward the
//     nearest frontier (an observed free cell adjacent to unknown ground).
//     The path is recomputed every step, so cells that turn out to be
//     walls or boxes invalidate a stale plan automatically.
//
// The search reports NoSolution when no frontier remains and the final
// solve fails; budget caps yield Aborted.
//
// Complexity: each step costs one observation O(r²) plus one BFS over the
// known cells; the final solve is a full state-space BFS.
func ExploreUnknown(level *sokoban.Level, o Options) (Result, error) {
	if err := precheck(level, &o); err != nil {
		return Result{}, err
	}
	if o.VisionRadius < 0 {
		return Result{}, fmt.Errorf("%w: VisionRadius cannot be negative (%d)", ErrOptionViolation, o.VisionRadius)
	}

	start := time.Now()
	res := Result{Status: StatusNoSolution, PeakFrontier: 1}
	b := newBudget(&o)

	state := level.InitialState()
	w := &explorer{
		level:       level,
		radius:      o.VisionRadius,
		known:       make(map[sokoban.Coord]terrain),
		seenTargets: make(map[sokoban.Coord]bool),
		seenBoxes:   make(map[sokoban.Coord]bool),
	}

	actions := []sokoban.Action{}
	states := []sokoban.State{state}
	res.NodesGenerated = 1

	for {
		if b.exhausted(res.NodesExpanded) {
			res.Status = StatusAborted

			break
		}
		res.NodesExpanded++
		o.expand(state, len(actions))

		w.observe(state)

		// Full picture of boxes and targets: finish with an exhaustive solve.
		if len(w.seenTargets) == level.BoxCount() && len(w.seenBoxes) == state.BoxCount() {
			sub := breadthFirstCore(level, state, level.IsGoal, &o, nil)
			res.NodesExpanded += sub.NodesExpanded
			res.NodesGenerated += sub.NodesGenerated
			if sub.PeakFrontier > res.PeakFrontier {
				res.PeakFrontier = sub.PeakFrontier
			}
			if sub.Status == StatusSolved {
				res.Status = StatusSolved
				res.Actions = append(actions, sub.Actions...)
				res.States = append(states, sub.States[1:]...)
			} else {
				// BFS is complete: with full box/target knowledge a failed
				// solve means the level is unsolvable from here.
				res.Status = sub.Status
			}

			break
		}

		step, ok := w.stepTowardFrontier(state.Agent())
		if !ok {
			break // nothing left to explore
		}
		dir, walkable := dirBetween(state.Agent(), step)
		if !walkable {
			break
		}
		next, legal := level.Apply(state, sokoban.Action{Dir: dir})
		if !legal {
			break // belief map disagrees with the ground truth; stop here
		}
		state = next
		actions = append(actions, sokoban.Action{Dir: dir})
		states = append(states, state)
		res.NodesGenerated++
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

// explorer carries the belief state of one ExploreUnknown run.
type explorer struct {
	level       *sokoban.Level
	radius      int
	known       map[sokoban.Coord]terrain
	seenTargets map[sokoban.Coord]bool
	seenBoxes   map[sokoban.Coord]bool
}

// observe reveals every in-bounds cell within the vision radius of the
// agent and merges it into the belief map. Boxes are static during
// exploration, so recording them as blocking terrain stays accurate until
// the final solve takes over.
func (w *explorer) observe(s sokoban.State) {
	agent := s.Agent()
	for dr := -w.radius; dr <= w.radius; dr++ {
		for dc := -w.radius; dc <= w.radius; dc++ {
			c := sokoban.Coord{R: agent.R + dr, C: agent.C + dc}
			if !w.level.InBounds(c) {
				continue
			}
			switch {
			case w.level.IsWall(c):
				w.known[c] = terrainWall
			case s.HasBox(c):
				w.known[c] = terrainBox
			default:
				w.known[c] = terrainFree
			}
			if w.level.IsTarget(c) {
				w.seenTargets[c] = true
			}
			if s.HasBox(c) {
				w.seenBoxes[c] = true
			}
		}
	}
}

// frontiers returns the observed free cells adjacent to at least one
// unknown in-bounds cell, sorted row-major for determinism.
func (w *explorer) frontiers() []sokoban.Coord {
	var out []sokoban.Coord
	for c, t := range w.known {
		if t != terrainFree {
			continue
		}
		for _, d := range []sokoban.Dir{sokoban.Up, sokoban.Down, sokoban.Left, sokoban.Right} {
			nb := c.Step(d)
			if !w.level.InBounds(nb) {
				continue
			}
			if _, seen := w.known[nb]; !seen {
				out = append(out, c)

				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].R != out[j].R {
			return out[i].R < out[j].R
		}

		return out[i].C < out[j].C
	})

	return out
}

// stepTowardFrontier picks the frontier with the shortest known-cells path
// from the agent (row-major tie-break) and returns the first cell of that
// path. Path distance, not Manhattan distance, keeps the walk monotone:
// each step shrinks the distance to the nearest frontier by one, so the
// exploration loop cannot oscillate without learning anything new.
func (w *explorer) stepTowardFrontier(agent sokoban.Coord) (sokoban.Coord, bool) {
	fs := w.frontiers()
	if len(fs) == 0 {
		return sokoban.Coord{}, false
	}

	// One grid BFS from the agent over known free cells; dist and parent
	// cover every reachable cell at once.
	dist := map[sokoban.Coord]int{agent: 0}
	parent := map[sokoban.Coord]sokoban.Coord{}
	queue := []sokoban.Coord{agent}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range []sokoban.Dir{sokoban.Up, sokoban.Down, sokoban.Left, sokoban.Right} {
			nb := cur.Step(d)
			if _, seen := dist[nb]; seen || w.known[nb] != terrainFree || !w.level.InBounds(nb) {
				continue
			}
			dist[nb] = dist[cur] + 1
			parent[nb] = cur
			queue = append(queue, nb)
		}
	}

	goal, best := sokoban.Coord{}, -1
	for _, f := range fs {
		if d, ok := dist[f]; ok && d > 0 && (best < 0 || d < best) {
			goal, best = f, d
		}
	}
	if best < 0 {
		return sokoban.Coord{}, false // no reachable frontier off the agent cell
	}

	step := goal
	for parent[step] != agent {
		step = parent[step]
	}

	return step, true
}

// dirBetween derives the walk direction from one cell to an orthogonal
// neighbor.
func dirBetween(from, to sokoban.Coord) (sokoban.Dir, bool) {
	switch {
	case to.R == from.R-1 && to.C == from.C:
		return sokoban.Up, true
	case to.R == from.R+1 && to.C == from.C:
		return sokoban.Down, true
	case to.R == from.R && to.C == from.C-1:
		return sokoban.Left, true
	case to.R == from.R && to.C == from.C+1:
		return sokoban.Right, true
	default:
		return sokoban.Up, false
	}
}
