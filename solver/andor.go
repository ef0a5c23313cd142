package solver

import (
	"time"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
)

// AndOrSearch builds a conditional plan over nondeterministic outcomes.
// OR-nodes pick an action at a state; AND-nodes require the plan to handle
// every state that action may produce, as enumerated by the Outcomes
// option. Without an Outcomes function every move has its single
// deterministic outcome and the plan degenerates to a linear path.
//
// States already on the current recursion path fail the branch that
// reaches them again, so plans never rely on loops. Solved states are
// memoized with their sub-plans; failed states are memoized only when the
// failure involved no on-path cycle and no truncation, since those
// failures depend on where the recursion came from.
//
// On success Result.Plan carries the conditional plan tree, and when the
// tree is a single chain it is also linearized into Actions and States.
//
// Complexity: exponential in plan depth worst case; memoization bounds the
// work at O(distinct states reached) for deterministic outcome sets.
func AndOrSearch(level *sokoban.Level, o Options) (Result, error) {
	if err := precheck(level, &o); err != nil {
		return Result{}, err
	}
	start := time.Now()
	res := Result{Status: StatusNoSolution}
	b := newBudget(&o)

	a := &andOrWalker{
		level:  level,
		o:      &o,
		b:      &b,
		res:    &res,
		solved: make(map[string]*PlanNode),
		failed: make(map[string]bool),
		onPath: make(map[string]bool),
	}
	a.outcomes = o.Outcomes
	if a.outcomes == nil {
		a.outcomes = func(_ *sokoban.Level, _ sokoban.State, mv sokoban.Move) []sokoban.State {
			return []sokoban.State{mv.State}
		}
	}

	root := level.InitialState()
	res.NodesGenerated = 1
	plan, ok, _ := a.orSearch(root, 0)
	switch {
	case ok:
		res.Status = StatusSolved
		res.Plan = plan
		res.Actions, res.States = linearize(plan, root)
	case a.aborted || a.truncated:
		res.Status = StatusAborted
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

// andOrWalker carries the recursion state of one AndOrSearch run.
type andOrWalker struct {
	level    *sokoban.Level
	o        *Options
	b        *budget
	res      *Result
	outcomes OutcomesFunc

	solved map[string]*PlanNode // state key to memoized sub-plan
	failed map[string]bool      // state keys proven unsolvable path-independently
	onPath map[string]bool      // keys on the current recursion path

	aborted   bool
	truncated bool
}

// orSearch resolves one OR-node. The clean flag reports whether a failure
// is path-independent and therefore safe to memoize; cycle hits and depth
// truncation both taint it.
func (a *andOrWalker) orSearch(s sokoban.State, depth int) (plan *PlanNode, ok, clean bool) {
	if a.aborted {
		return nil, false, false
	}
	if a.level.IsGoal(s) {
		return &PlanNode{Goal: true}, true, true
	}

	key := s.Key()
	if p, hit := a.solved[key]; hit {
		return p, true, true
	}
	if a.failed[key] {
		return nil, false, true
	}
	if a.onPath[key] {
		return nil, false, false // looping back offers no progress
	}

	if a.b.exhausted(a.res.NodesExpanded) {
		a.aborted = true

		return nil, false, false
	}
	if a.o.MaxDepth > 0 && depth >= a.o.MaxDepth {
		a.truncated = true

		return nil, false, false
	}
	a.res.NodesExpanded++
	a.o.expand(s, depth)

	a.onPath[key] = true
	if n := len(a.onPath); n > a.res.PeakFrontier {
		a.res.PeakFrontier = n
	}
	defer delete(a.onPath, key)

	clean = true
	for _, mv := range a.level.Transitions(s) {
		outs := a.outcomes(a.level, s, mv)
		if len(outs) == 0 {
			outs = []sokoban.State{mv.State}
		}
		a.res.NodesGenerated += len(outs)

		branches := make([]PlanBranch, 0, len(outs))
		covered := true
		for _, out := range outs {
			sub, subOK, subClean := a.orSearch(out, depth+1)
			if !subClean {
				clean = false
			}
			if !subOK {
				covered = false

				break
			}
			branches = append(branches, PlanBranch{State: out, Next: sub})
		}
		if !covered {
			continue // this action leaves some outcome unhandled
		}

		p := &PlanNode{Action: mv.Action, Branches: branches}
		a.solved[key] = p

		return p, true, true
	}

	if clean && !a.aborted {
		a.failed[key] = true
	}

	return nil, false, clean
}

// linearize flattens a plan into action and state sequences when every
// node has exactly one branch. Branching plans keep Actions and States nil;
// the Plan tree is the authoritative answer there.
func linearize(plan *PlanNode, root sokoban.State) ([]sokoban.Action, []sokoban.State) {
	actions := []sokoban.Action{}
	states := []sokoban.State{root}
	for p := plan; p != nil && !p.Goal; {
		if len(p.Branches) != 1 {
			return nil, nil
		}
		actions = append(actions, p.Action)
		states = append(states, p.Branches[0].State)
		p = p.Branches[0].Next
	}

	return actions, states
}
