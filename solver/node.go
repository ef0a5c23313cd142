package solver

import (
	"time"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
)

// node is a search-tree entry: a state, its predecessor link, the action
// that produced it, and its depth (equal to its unit path cost). Nodes are
// owned by the strategy instance that created them and discarded after the
// run, except along the reconstructed solution path.
type node struct {
	state  sokoban.State
	parent *node
	act    sokoban.Action
	depth  int
}

// path reconstructs the action and state sequences from the root to n.
// The state sequence starts at the root, so len(states) == len(actions)+1.
func (n *node) path() ([]sokoban.Action, []sokoban.State) {
	actions := make([]sokoban.Action, 0, n.depth)
	states := make([]sokoban.State, 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		states = append(states, cur.state)
		if cur.parent != nil {
			actions = append(actions, cur.act)
		}
	}
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}

	return actions, states
}

// budget bundles the advisory safety caps. It is checked once per
// expansion boundary; exceeding any cap forces StatusAborted with partial
// statistics, never a hang and never an error.
type budget struct {
	ctx      <-chan struct{}
	start    time.Time
	deadline time.Time
	maxNodes int
}

func newBudget(o *Options) budget {
	b := budget{start: time.Now(), maxNodes: o.MaxNodes}
	if o.Ctx != nil {
		b.ctx = o.Ctx.Done()
	}
	if o.TimeLimit > 0 {
		b.deadline = b.start.Add(o.TimeLimit)
	}

	return b
}

// exhausted reports whether any cap has fired given the current
// expanded-node count.
func (b *budget) exhausted(expanded int) bool {
	if b.maxNodes > 0 && expanded >= b.maxNodes {
		return true
	}
	if !b.deadline.IsZero() && time.Now().After(b.deadline) {
		return true
	}
	select {
	case <-b.ctx:
		return true
	default:
	}

	return false
}

// precheck validates the shared preconditions of every strategy entry point.
func precheck(level *sokoban.Level, o *Options) error {
	if level == nil {
		return ErrNilLevel
	}
	if o.err != nil {
		return o.err
	}
	if o.Ctx == nil {
		o.Ctx = DefaultOptions().Ctx
	}

	return nil
}

// expand fires the OnExpand hook, if any.
func (o *Options) expand(s sokoban.State, depth int) {
	if o.OnExpand != nil {
		o.OnExpand(s, depth)
	}
}
