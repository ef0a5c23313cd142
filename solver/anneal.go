package solver

import (
	"fmt"
	"math"
	"time"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
)

// SimulatedAnnealing runs stochastic single-trajectory local search with
// the heuristic value as energy. Each step draws one uniformly random legal
// successor; an energy improvement is accepted unconditionally, a
// worsening move with probability exp(-Δ/T). The temperature cools
// geometrically (T ← T·CoolingRate) until it falls below MinTemperature or
// the phase hits MaxIterations; WithRestarts allows further phases, each
// resetting to the initial state with a reheated schedule and an
// independent RNG substream.
//
// InitialTemperature zero degrades the acceptance rule to pure greedy
// descent: improving moves are always taken, worsening moves never.
//
// No visited set restricts the walk; a first-discovery tree is kept only
// so a found goal can be reported as a concrete action path. Runs are
// deterministic per seed. When the schedule expires without reaching a
// goal the result is NoSolution; budget caps yield Aborted as everywhere.
//
// Complexity: O(Restarts·MaxIterations·B) time, memory proportional to the
// states discovered.
func SimulatedAnnealing(level *sokoban.Level, o Options) (Result, error) {
	if err := precheck(level, &o); err != nil {
		return Result{}, err
	}
	switch {
	case o.InitialTemperature < 0:
		return Result{}, fmt.Errorf("%w: InitialTemperature cannot be negative (%g)", ErrOptionViolation, o.InitialTemperature)
	case o.CoolingRate <= 0 || o.CoolingRate >= 1:
		return Result{}, fmt.Errorf("%w: CoolingRate must lie in (0,1) (%g)", ErrOptionViolation, o.CoolingRate)
	case o.MinTemperature <= 0:
		return Result{}, fmt.Errorf("%w: MinTemperature must be positive (%g)", ErrOptionViolation, o.MinTemperature)
	case o.MaxIterations <= 0:
		return Result{}, fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, o.MaxIterations)
	case o.Restarts < 0:
		return Result{}, fmt.Errorf("%w: Restarts cannot be negative (%d)", ErrOptionViolation, o.Restarts)
	}

	start := time.Now()
	res := Result{Status: StatusNoSolution, PeakFrontier: 1}
	b := newBudget(&o)

	root := &node{state: level.InitialState()}
	if level.IsGoal(root.state) {
		res.Status = StatusSolved
		res.Actions, res.States = root.path()
		res.NodesGenerated = 1
		res.Elapsed = time.Since(start)

		return res, nil
	}

	// discovered maps state keys to their first-discovery nodes, forming a
	// tree rooted at the start so any reached goal has a replayable path.
	discovered := map[string]*node{root.state.Key(): root}
	res.NodesGenerated = 1

	base := rngFromSeed(o.Seed)

phases:
	for phase := 0; phase <= o.Restarts; phase++ {
		rng := base
		if phase > 0 {
			rng = deriveRNG(base, uint64(phase))
		}
		cur := root
		energy := level.Heuristic(cur.state)
		temp := o.InitialTemperature

		for iter := 0; iter < o.MaxIterations; iter++ {
			// A positive schedule ends the phase at the floor; the zero
			// schedule (greedy descent) runs to the iteration cap.
			if temp > 0 && temp < o.MinTemperature {
				break
			}
			if b.exhausted(res.NodesExpanded) {
				res.Status = StatusAborted

				break phases
			}
			res.NodesExpanded++
			o.expand(cur.state, cur.depth)

			moves := level.Transitions(cur.state)
			if len(moves) == 0 {
				break // trajectory is stuck; reheat if restarts remain
			}
			mv := moves[rng.Intn(len(moves))]

			next, seen := discovered[mv.State.Key()]
			if !seen {
				next = &node{state: mv.State, parent: cur, act: mv.Action, depth: cur.depth + 1}
				discovered[next.state.Key()] = next
				res.NodesGenerated++
			}

			if level.IsGoal(next.state) {
				res.Status = StatusSolved
				res.Actions, res.States = next.path()

				break phases
			}

			delta := float64(level.Heuristic(next.state) - energy)
			if delta < 0 || (temp > 0 && rng.Float64() < math.Exp(-delta/temp)) {
				cur = next
				energy += int(delta)
			}
			temp *= o.CoolingRate
		}
	}
	res.Elapsed = time.Since(start)

	return res, nil
}
