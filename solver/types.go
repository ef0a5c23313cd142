package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
)

// Sentinel errors returned by the solver dispatcher and strategies.
var (
	// ErrNilLevel is returned when a nil *sokoban.Level is passed.
	ErrNilLevel = errors.New("solver: level is nil")

	// ErrUnknownAlgorithm is returned for an unrecognized Algorithm value
	// or name.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	// It is surfaced when the search is invoked, not when the option is built.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Algorithm selects one member of the strategy family. The set is closed;
// dispatch happens over this enum, never by reflection.
type Algorithm int

const (
	// BFS is uninformed breadth-first search (minimum-action paths).
	BFS Algorithm = iota
	// DFS is uninformed depth-first search over an explicit stack.
	DFS
	// Greedy is best-first search ordered by the heuristic alone.
	Greedy
	// AStar is best-first search ordered by path cost plus heuristic.
	AStar
	// Beam is bounded-width layered search keeping the best K candidates.
	Beam
	// Annealing is stochastic single-trajectory simulated annealing.
	Annealing
	// PartialObservation explores under a limited visibility radius.
	PartialObservation
	// Backtracking solves the box-to-target assignment as a plain CSP.
	Backtracking
	// ForwardChecking is the CSP with eager domain pruning.
	ForwardChecking
	// AndOr builds a conditional plan tree over nondeterministic outcomes.
	AndOr
)

func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case Greedy:
		return "Greedy"
	case AStar:
		return "AStar"
	case Beam:
		return "Beam"
	case Annealing:
		return "Annealing"
	case PartialObservation:
		return "PartialObservation"
	case Backtracking:
		return "Backtracking"
	case ForwardChecking:
		return "ForwardChecking"
	case AndOr:
		return "AndOr"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm resolves a case-insensitive algorithm name, including the
// common short forms ("a*", "sa", "fc", "and-or"). It backs the run-by-name
// invocation contract exposed to callers that select strategies at runtime.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "greedy":
		return Greedy, nil
	case "astar", "a*":
		return AStar, nil
	case "beam":
		return Beam, nil
	case "annealing", "sa", "simulatedannealing":
		return Annealing, nil
	case "partial", "partialobservation", "explore":
		return PartialObservation, nil
	case "backtracking", "bt":
		return Backtracking, nil
	case "forwardchecking", "fc":
		return ForwardChecking, nil
	case "andor", "and-or":
		return AndOr, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Status is the terminal outcome of one search invocation.
// NoSolution and Aborted are normal outcomes, not errors.
type Status int

const (
	// StatusNoSolution means the strategy exhausted its search space
	// without reaching a goal state.
	StatusNoSolution Status = iota
	// StatusSolved means a goal state was reached and a path reconstructed.
	StatusSolved
	// StatusAborted means a safety cap (nodes, depth, time, context) fired;
	// partial statistics are preserved.
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "Solved"
	case StatusAborted:
		return "Aborted"
	default:
		return "NoSolution"
	}
}

// Result holds the outcome of one strategy run. It is returned by value;
// no solver state survives the invocation.
type Result struct {
	// Status is the terminal outcome.
	Status Status

	// Actions is the solution action sequence; empty when the start state
	// is already terminal, nil unless Status is StatusSolved.
	Actions []sokoban.Action

	// States is the visited state sequence for replay or animation,
	// beginning at the initial state; len(States) == len(Actions)+1
	// for solved runs.
	States []sokoban.State

	// NodesExpanded counts nodes taken off the frontier (CSP strategies
	// count attempted variable assignments instead).
	NodesExpanded int

	// NodesGenerated counts successor nodes created.
	NodesGenerated int

	// PeakFrontier is the maximum frontier size observed, a memory proxy.
	PeakFrontier int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// Plan is the conditional plan tree; populated by AndOr only.
	Plan *PlanNode
}

// PlanNode is one OR-decision of an AND-OR conditional plan: either a goal
// leaf, or an action whose possible outcomes all carry their own sub-plans.
type PlanNode struct {
	// Goal marks a leaf whose state already satisfies the goal test.
	Goal bool

	// Action is the move chosen at this OR-node (zero value on goal leaves).
	Action sokoban.Action

	// Branches enumerates every possible outcome of Action; a plan is valid
	// only if each branch reaches a goal or a solved sub-plan.
	Branches []PlanBranch
}

// PlanBranch pairs one outcome state with the sub-plan that handles it.
type PlanBranch struct {
	State sokoban.State
	Next  *PlanNode
}

// OutcomesFunc maps one legal move to the set of states it may actually
// produce, modeling environment uncertainty for AND-OR search. A nil or
// empty return falls back to the deterministic outcome.
type OutcomesFunc func(level *sokoban.Level, from sokoban.State, mv sokoban.Move) []sokoban.State

// ExpandHook observes one node expansion: the state being expanded and its
// depth. Strategies invoke it at every expansion boundary, which is also
// where cancellation and budget caps are checked, so a caller can animate
// a search step by step.
type ExpandHook func(s sokoban.State, depth int)

// Options holds the configuration shared by the whole strategy family.
// Build it with DefaultOptions and functional Option values; invalid values
// are recorded and surfaced as ErrOptionViolation when a search starts.
type Options struct {
	// Ctx allows cancellation and deadlines; checked at expansion
	// boundaries, mapped to StatusAborted.
	Ctx context.Context

	// MaxDepth caps node depth (0 disables). Exceeding it truncates the
	// search and yields StatusAborted if no goal was found.
	MaxDepth int

	// MaxNodes caps expanded nodes (0 disables).
	MaxNodes int

	// TimeLimit caps wall-clock time (0 disables).
	TimeLimit time.Duration

	// BeamWidth is the layer width K for Beam search; must be positive.
	BeamWidth int

	// InitialTemperature is the starting annealing temperature. Zero is
	// allowed and degrades annealing to pure greedy descent.
	InitialTemperature float64

	// CoolingRate is the geometric cooling factor, strictly between 0 and 1.
	CoolingRate float64

	// MinTemperature is the positive temperature floor ending one
	// annealing phase.
	MinTemperature float64

	// MaxIterations caps the steps of one annealing phase.
	MaxIterations int

	// Restarts is the number of times annealing may reset to the initial
	// state with a reheated schedule after a phase expires.
	Restarts int

	// Seed selects the deterministic RNG stream; 0 means the fixed
	// default seed, never a time-based source.
	Seed int64

	// VisionRadius bounds what the agent perceives per step in
	// partial-observability search; must be non-negative.
	VisionRadius int

	// Outcomes injects nondeterministic outcome sets for AndOr.
	Outcomes OutcomesFunc

	// OnExpand is called at every expansion boundary.
	OnExpand ExpandHook

	// first violation recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults: background
// context, no safety caps, beam width 50, annealing schedule 120 → 1.0 at
// rate 0.95 with 100000 iterations per phase and no restarts, seed 0,
// vision radius 2, deterministic outcomes, no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:                context.Background(),
		BeamWidth:          50,
		InitialTemperature: 120,
		CoolingRate:        0.95,
		MinTemperature:     1,
		MaxIterations:      100_000,
		VisionRadius:       2,
	}
}

// Option configures a search via functional arguments.
type Option func(*Options)

// WithContext sets a custom context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth caps node depth; 0 disables the cap, negative is invalid.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithMaxNodes caps expanded nodes; 0 disables the cap, negative is invalid.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxNodes cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxNodes = n
	}
}

// WithTimeLimit caps wall-clock time; 0 disables the cap.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%v)", ErrOptionViolation, d)

			return
		}
		o.TimeLimit = d
	}
}

// WithBeamWidth sets the Beam layer width K; must be positive.
func WithBeamWidth(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: BeamWidth must be positive (%d)", ErrOptionViolation, k)

			return
		}
		o.BeamWidth = k
	}
}

// WithInitialTemperature sets the annealing start temperature.
// Zero yields pure greedy descent; negative is invalid.
func WithInitialTemperature(t float64) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: InitialTemperature cannot be negative (%g)", ErrOptionViolation, t)

			return
		}
		o.InitialTemperature = t
	}
}

// WithCoolingRate sets the geometric cooling factor; must lie in (0, 1).
func WithCoolingRate(r float64) Option {
	return func(o *Options) {
		if r <= 0 || r >= 1 {
			o.err = fmt.Errorf("%w: CoolingRate must lie in (0,1) (%g)", ErrOptionViolation, r)

			return
		}
		o.CoolingRate = r
	}
}

// WithMinTemperature sets the temperature floor; must be positive.
func WithMinTemperature(t float64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: MinTemperature must be positive (%g)", ErrOptionViolation, t)

			return
		}
		o.MinTemperature = t
	}
}

// WithMaxIterations caps one annealing phase; must be positive.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxIterations = n
	}
}

// WithRestarts allows annealing to restart from the initial state after a
// phase expires; negative is invalid.
func WithRestarts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Restarts cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.Restarts = n
	}
}

// WithSeed selects the deterministic RNG stream for stochastic strategies.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithVisionRadius bounds perception for partial-observability search;
// must be non-negative.
func WithVisionRadius(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: VisionRadius cannot be negative (%d)", ErrOptionViolation, r)

			return
		}
		o.VisionRadius = r
	}
}

// WithOutcomes injects nondeterministic outcome generation for AndOr.
func WithOutcomes(fn OutcomesFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Outcomes = fn
		}
	}
}

// WithOnExpand registers a hook fired at every expansion boundary.
func WithOnExpand(fn ExpandHook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
