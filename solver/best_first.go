package solver

import (
	"container/heap"
	"time"

	"github.com/maiquynhvnlhb-ship-it/SokobanSolver-AIProject/sokoban"
)

// GreedyBestFirst runs best-first search keyed by the heuristic alone.
// It returns the first goal found; the path carries no optimality
// guarantee, and the heuristic need not be admissible.
//
// Complexity: O(S·B log S) time for S reachable states, O(S) memory.
func GreedyBestFirst(level *sokoban.Level, o Options) (Result, error) {
	if err := precheck(level, &o); err != nil {
		return Result{}, err
	}
	start := time.Now()
	res := Result{Status: StatusNoSolution}
	b := newBudget(&o)

	root := &node{state: level.InitialState()}
	w := newFrontier()
	w.push(level.Heuristic(root.state), 0, root)
	visited := map[string]bool{root.state.Key(): true}
	res.NodesGenerated = 1

	truncated := false
	for w.Len() > 0 {
		if w.Len() > res.PeakFrontier {
			res.PeakFrontier = w.Len()
		}
		if b.exhausted(res.NodesExpanded) {
			res.Status = StatusAborted

			break
		}

		n := w.pop()
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
		for _, mv := range level.Transitions(n.state) {
			k := mv.State.Key()
			if visited[k] {
				continue
			}
			visited[k] = true
			child := &node{state: mv.State, parent: n, act: mv.Action, depth: n.depth + 1}
			w.push(level.Heuristic(mv.State), 0, child)
			res.NodesGenerated++
		}
	}

	if res.Status == StatusNoSolution && truncated {
		res.Status = StatusAborted
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

// AStarSearch runs A* keyed by f = g + h, where g is the unit action count
// and h the admissible nearest-target heuristic, so the returned path has
// the minimum number of actions. Duplicate states use the lazy decrease-key
// pattern: improved paths push fresh heap entries and stale ones are
// skipped on pop via the best-f map.
//
// Complexity: O(S·B log S) time, O(S) memory.
func AStarSearch(level *sokoban.Level, o Options) (Result, error) {
	if err := precheck(level, &o); err != nil {
		return Result{}, err
	}
	start := time.Now()
	res := Result{Status: StatusNoSolution}
	b := newBudget(&o)

	root := &node{state: level.InitialState()}
	h0 := level.Heuristic(root.state)
	w := newFrontier()
	w.push(h0, 0, root)

	// gScore holds the best known path cost per state; bestF skips stale
	// heap entries left behind by lazy decrease-key.
	gScore := map[string]int{root.state.Key(): 0}
	bestF := map[string]int{root.state.Key(): h0}
	res.NodesGenerated = 1

	truncated := false
	for w.Len() > 0 {
		if w.Len() > res.PeakFrontier {
			res.PeakFrontier = w.Len()
		}
		if b.exhausted(res.NodesExpanded) {
			res.Status = StatusAborted

			break
		}

		item := w.popItem()
		n := item.n
		if f, ok := bestF[n.state.Key()]; ok && f < item.priority {
			continue // stale entry
		}
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
		for _, mv := range level.Transitions(n.state) {
			k := mv.State.Key()
			tentative := n.depth + 1
			if old, ok := gScore[k]; ok && tentative >= old {
				continue
			}
			gScore[k] = tentative
			f := tentative + level.Heuristic(mv.State)
			bestF[k] = f
			child := &node{state: mv.State, parent: n, act: mv.Action, depth: tentative}
			// Ties on f prefer the deeper node: closer to the goal first.
			w.push(f, -tentative, child)
			res.NodesGenerated++
		}
	}

	if res.Status == StatusNoSolution && truncated {
		res.Status = StatusAborted
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

// pqItem is one frontier entry ordered by priority, then tie, then FIFO
// insertion order, keeping every informed strategy deterministic.
type pqItem struct {
	priority int
	tie      int
	order    int
	n        *node
}

// frontier is a min-heap of pqItem with a monotone insertion counter.
type frontier struct {
	items  []*pqItem
	nextID int
}

func newFrontier() *frontier { return &frontier{} }

func (f *frontier) push(priority, tie int, n *node) {
	heap.Push(f, &pqItem{priority: priority, tie: tie, n: n})
}

func (f *frontier) pop() *node { return f.popItem().n }

func (f *frontier) popItem() *pqItem { return heap.Pop(f).(*pqItem) }

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.tie != b.tie {
		return a.tie < b.tie
	}

	return a.order < b.order
}

func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x interface{}) {
	item := x.(*pqItem)
	item.order = f.nextID
	f.nextID++
	f.items = append(f.items, item)
}

func (f *frontier) Pop() interface{} {
	old := f.items
	n := len(old)
	item := old[n-1]
	f.items = old[:n-1]

	return item
}
