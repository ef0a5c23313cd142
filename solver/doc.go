// Package solver provides the family of Sokoban search strategies.
//
// Every strategy consumes a *sokoban.Level plus an Options value and
// returns a Result by value; nothing is shared between invocations, so
// distinct runs may proceed concurrently on the same level.
//
//   - BreadthFirst — uninformed FIFO search; minimum-action solutions.
//     Complexity: O(S·B) time, O(S) memory.
//
//   - DepthFirst — uninformed LIFO search over an explicit stack;
//     no optimality guarantee.
//
//   - GreedyBestFirst — best-first keyed by the heuristic alone.
//
//   - AStarSearch — best-first keyed by f = g + h with unit action costs
//     and the admissible nearest-target heuristic; optimal like BFS.
//
//   - BeamSearch — layered search keeping the best BeamWidth candidates;
//     trades completeness for memory.
//
//   - SimulatedAnnealing — stochastic local search on the heuristic as
//     energy, geometric cooling, optional restarts; deterministic per seed.
//
//   - ExploreUnknown — partial observability: observe within VisionRadius,
//     walk to frontiers, solve exactly once everything relevant is seen.
//
//   - SolveBacktracking / SolveForwardChecking — the box-to-target
//     assignment as a CSP, checked late or propagated eagerly, then
//     realized by an exact search.
//
//   - AndOrSearch — conditional planning over nondeterministic outcomes;
//     the answer is a plan tree, not a path.
//
// Strategy selection at run time goes through Solve and ParseAlgorithm.
// Safety caps (context, MaxNodes, MaxDepth, TimeLimit) end any run with
// StatusAborted and partial statistics; NoSolution and Aborted are normal
// outcomes, never errors.
package solver
